// Package payload builds the exact strings embedded into QR codes for each
// supported content type.
//
// Every encoder is a pure function of its input: the same ContentType and
// Fields always yield the same string. Inputs without meaningful content
// return ErrNoContent so callers can skip rendering without reporting an
// error to the user.
//
// # Content types
//
//   - url, text: trimmed input passed through unchanged.
//   - wifi: WIFI:T:<auth>;S:<ssid>;P:<password>;; (password omitted for nopass).
//   - vcard: a VERSION:3.0 contact card with escaped values.
//   - whatsapp: https://wa.me/<digits>[?text=<message>].
//   - sms: SMSTO:<phone>:<message>.
//
// # Usage
//
//	s, err := payload.Encode(payload.WiFi, payload.Fields{
//		SSID:     "Cafe",
//		Password: "secret1",
//		Auth:     payload.AuthWPA,
//	})
//	if errors.Is(err, payload.ErrNoContent) {
//		// nothing to render yet
//	}
//
// # Validation
//
// Validate reports format warnings for phone and email fields. Warnings never
// block encoding: Encode produces output from whatever is present.
package payload

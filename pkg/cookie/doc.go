// Package cookie sets and reads HTTP cookies with HMAC-SHA256 signatures.
//
// A Manager is created with one or more secrets of at least 32 bytes. The
// first secret signs new cookies; all of them are tried when verifying, so
// secrets can be rotated without invalidating cookies already issued.
//
//	man, err := cookie.New([]string{secret}, cookie.WithMaxAge(365*24*3600))
//	if err != nil {
//		return err
//	}
//	_ = man.SetSigned(w, "qrgen_vid", visitorID)
//	id, err := man.GetSigned(r, "qrgen_vid")
//
// Tampered or malformed values return ErrInvalidSignature or ErrInvalidFormat.
package cookie

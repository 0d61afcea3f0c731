package payload

import "strings"

// ContentType selects which fields are collected and which encoder applies.
type ContentType string

const (
	URL      ContentType = "url"
	Text     ContentType = "text"
	WiFi     ContentType = "wifi"
	VCard    ContentType = "vcard"
	WhatsApp ContentType = "whatsapp"
	SMS      ContentType = "sms"
)

// ContentTypes lists all supported types in display order.
var ContentTypes = []ContentType{URL, Text, WiFi, VCard, WhatsApp, SMS}

// ParseContentType converts a user-supplied name into a ContentType.
// Matching is case-insensitive; an empty string resolves to URL.
func ParseContentType(s string) (ContentType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return URL, nil
	}
	for _, ct := range ContentTypes {
		if string(ct) == s {
			return ct, nil
		}
	}
	return "", ErrUnknownContentType
}

// Label returns a human readable name for the content type.
func (ct ContentType) Label() string {
	switch ct {
	case URL:
		return "URL"
	case Text:
		return "Text"
	case WiFi:
		return "Wi-Fi"
	case VCard:
		return "Contact"
	case WhatsApp:
		return "WhatsApp"
	case SMS:
		return "SMS"
	default:
		return string(ct)
	}
}

// Auth is the Wi-Fi authentication mode.
type Auth string

const (
	AuthWPA    Auth = "WPA"
	AuthWEP    Auth = "WEP"
	AuthNoPass Auth = "nopass"
)

// UnmarshalText accepts any spelling of a mode ("wpa2", "open", "WEP"),
// defaulting to WPA like Encode does.
func (a *Auth) UnmarshalText(text []byte) error {
	*a = normalizeAuth(Auth(text))
	return nil
}

// normalizeAuth maps free-form input onto a known mode, defaulting to WPA.
func normalizeAuth(a Auth) Auth {
	switch strings.ToLower(strings.TrimSpace(string(a))) {
	case "nopass", "none", "open":
		return AuthNoPass
	case "wep":
		return AuthWEP
	default:
		return AuthWPA
	}
}

package payload

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/qrgen/pkg/sanitizer"
)

// Encode returns the string to embed in the QR code for the given content type.
// It returns ErrNoContent when f carries nothing meaningful for ct.
func Encode(ct ContentType, f Fields) (string, error) {
	switch ct {
	case URL, Text:
		return encodeText(f.Text)
	case WiFi:
		return encodeWiFi(f.SSID, f.Password, f.Auth)
	case VCard:
		return encodeVCard(f)
	case WhatsApp:
		return encodeWhatsApp(f.Phone, f.Message)
	case SMS:
		return encodeSMS(f.Phone, f.Message)
	default:
		return "", ErrUnknownContentType
	}
}

// HasContent reports whether f produces a payload for ct.
func HasContent(ct ContentType, f Fields) bool {
	_, err := Encode(ct, f)
	return err == nil
}

func encodeText(s string) (string, error) {
	s = sanitizer.Trim(s)
	if s == "" {
		return "", ErrNoContent
	}
	return s, nil
}

func encodeWiFi(ssid, password string, auth Auth) (string, error) {
	ssid = sanitizer.Trim(ssid)
	if ssid == "" {
		return "", ErrNoContent
	}
	auth = normalizeAuth(auth)

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(string(auth))
	b.WriteString(";S:")
	b.WriteString(ssid)
	b.WriteString(";")
	if auth != AuthNoPass {
		b.WriteString("P:")
		b.WriteString(password)
		b.WriteString(";")
	}
	b.WriteString(";")
	return b.String(), nil
}

func encodeVCard(f Fields) (string, error) {
	first := sanitizer.Trim(f.FirstName)
	last := sanitizer.Trim(f.LastName)
	phone := sanitizer.Trim(f.Phone)
	email := sanitizer.Trim(f.Email)
	company := sanitizer.Trim(f.Company)
	website := sanitizer.Trim(f.Website)

	if first == "" && last == "" && phone == "" && email == "" && company == "" && website == "" {
		return "", ErrNoContent
	}

	fn := strings.TrimSpace(first + " " + last)
	if fn == "" {
		fn = "Contact"
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + escapeVCard(last) + ";" + escapeVCard(first) + ";;;",
		"FN:" + escapeVCard(fn),
	}
	if phone != "" {
		lines = append(lines, "TEL:"+escapeVCard(phone))
	}
	if email != "" {
		lines = append(lines, "EMAIL:"+escapeVCard(email))
	}
	if company != "" {
		lines = append(lines, "ORG:"+escapeVCard(company))
	}
	if website != "" {
		lines = append(lines, "URL:"+escapeVCard(sanitizer.EnsureScheme(website, "https")))
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n"), nil
}

var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

func escapeVCard(s string) string {
	return vcardEscaper.Replace(norm.NFC.String(s))
}

func encodeWhatsApp(phone, message string) (string, error) {
	digits := sanitizer.KeepDigits(phone)
	if digits == "" {
		return "", ErrNoContent
	}
	link := "https://wa.me/" + digits
	if message = strings.TrimSpace(message); message != "" {
		link += "?text=" + escapeComponent(message)
	}
	return link, nil
}

// escapeComponent percent-encodes s for a query value, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func encodeSMS(phone, message string) (string, error) {
	phone = sanitizer.Trim(phone)
	if phone == "" {
		return "", ErrNoContent
	}
	return "SMSTO:" + phone + ":" + strings.TrimSpace(message), nil
}

package payload

// Fields is the per-visitor form state. Only the subset relevant to the
// selected ContentType is read by the encoder.
type Fields struct {
	// url, text
	Text string `json:"text" form:"text"`

	// wifi
	SSID     string `json:"ssid" form:"ssid"`
	Password string `json:"password" form:"password"`
	Auth     Auth   `json:"auth" form:"auth"`

	// vcard
	FirstName string `json:"firstName" form:"first_name"`
	LastName  string `json:"lastName" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Company   string `json:"company" form:"company"`
	Website   string `json:"website" form:"website"`

	// vcard, whatsapp, sms
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

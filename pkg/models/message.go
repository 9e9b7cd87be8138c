package models

// MessageSummary is one inbox entry as returned by the provider.
type MessageSummary struct {
	ID      int64  `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}

// MessageDetail is a full message as returned by the provider.
// Depending on the sender, the body arrives as plain text, HTML or both.
type MessageDetail struct {
	ID       int64  `json:"id"`
	From     string `json:"from"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	TextBody string `json:"textBody"`
	HTMLBody string `json:"htmlBody"`
}

// PreferredBody returns the most readable body variant available.
func (m *MessageDetail) PreferredBody() string {
	if m.TextBody != "" {
		return m.TextBody
	}
	if m.HTMLBody != "" {
		return m.HTMLBody
	}
	return m.Body
}

package models

// CallbackAction type of inline button action
type CallbackAction string

const (
	CallbackNewEmail     CallbackAction = "ne"
	CallbackPickDomain   CallbackAction = "pd"
	CallbackCheckInbox   CallbackAction = "ci"
	CallbackRefreshInbox CallbackAction = "ri"
	CallbackReadMessage  CallbackAction = "rd"
	CallbackDomains      CallbackAction = "dm"
	CallbackHistory      CallbackAction = "hs"
	CallbackHelp         CallbackAction = "hp"
	CallbackMainMenu     CallbackAction = "mm"
	CallbackAddDomain    CallbackAction = "ad"
)

// CallbackData structure for inline button callback.
// Kept short: Telegram limits callback data to 64 bytes.
type CallbackData struct {
	Action    CallbackAction `json:"a"`
	Domain    string         `json:"d,omitempty"` // empty with CallbackPickDomain means random
	MessageID int64          `json:"m,omitempty"` // provider message id for CallbackReadMessage
}

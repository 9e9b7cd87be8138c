package models

// Address is a disposable mailbox address in login@domain form.
type Address struct {
	Login  string
	Domain string
}

func (a Address) String() string {
	return a.Login + "@" + a.Domain
}

package models

// Email is an outgoing plain-text message.
type Email struct {
	To      string
	Subject string
	Body    string
}

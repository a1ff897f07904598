package adapter

import "errors"

var (
	// ErrMailNotSent is returned when a message could not be built or
	// delivered.
	ErrMailNotSent = errors.New("mail was not sent")
)

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every [FieldError].
	ErrInvalidInput = errors.New("invalid input")
)

// Field-level reasons. Their text is shown to the user next to the field.
var (
	ErrRequired        = errors.New("This field is required.")
	ErrInvalidEmail    = errors.New("Invalid email address.")
	ErrPasswordMatch   = errors.New("Field must be equal to password.")
	ErrUsernameLength  = fmt.Errorf("Field must be between %d and %d characters long.", UsernameMinLength, UsernameMaxLength)
	ErrTitleTooLong    = fmt.Errorf("Field cannot be longer than %d characters.", TitleMaxLength)
	ErrEmailTooLong    = fmt.Errorf("Field cannot be longer than %d characters.", EmailMaxLength)
	ErrPasswordTooLong = fmt.Errorf("Field cannot be longer than %d bytes.", PasswordMaxLength)
	ErrPictureType     = errors.New("File does not have an approved extension: jpg, jpeg, png")
)

// FieldError is a validation failure of a single form field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap exposes both the reason and [ErrInvalidInput].
func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

// NewFieldError binds reason to field.
func NewFieldError(field string, reason error) error {
	return &FieldError{Field: field, Err: reason}
}

// Fields flattens err into field → reason text. Errors that carry no field
// are skipped. The first reason per field wins.
func Fields(err error) map[string]string {
	fields := make(map[string]string)
	collectFields(err, fields)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func collectFields(err error, into map[string]string) {
	switch e := err.(type) {
	case nil:
		return
	case *FieldError:
		if _, seen := into[e.Field]; !seen {
			into[e.Field] = e.Err.Error()
		}
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectFields(inner, into)
		}
	case interface{ Unwrap() error }:
		collectFields(e.Unwrap(), into)
	}
}

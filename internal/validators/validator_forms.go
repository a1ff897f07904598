package validators

import (
	"context"
	"errors"
	"net/mail"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Form field names, as submitted by clients.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCurrentPassword = "current_password"
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldPicture         = "picture"
)

// Length limits mirror the column sizes of the schema.
const (
	UsernameMinLength = 2
	UsernameMaxLength = 20
	EmailMaxLength    = 120
	TitleMaxLength    = 100

	// PasswordMaxLength is counted in bytes, the most bcrypt will hash.
	PasswordMaxLength = 72
)

// AllowedPictureExtensions lists accepted avatar file extensions.
var AllowedPictureExtensions = []string{".jpg", ".jpeg", ".png"}

// FormValidator validates the request models of the blog.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate checks obj, which must be one of the request models. Without
// fields every field of the form is checked. All failing fields are
// reported together.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.PostRequest:
		return v.validatePost(value, fields...)
	case *models.PostRequest:
		return v.validatePost(*value, fields...)

	case models.ResetRequest:
		return v.validateResetRequest(value, fields...)
	case *models.ResetRequest:
		return v.validateResetRequest(*value, fields...)

	case models.PasswordRequest:
		return v.validatePassword(value, fields...)
	case *models.PasswordRequest:
		return v.validatePassword(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfile(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateRegister(form models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldUsername:
			errs.add(f, checkUsername(form.Username))
		case FieldEmail:
			errs.add(f, checkEmail(form.Email))
		case FieldPassword:
			errs.add(f, checkNewPassword(form.Password))
		case FieldConfirmPassword:
			errs.add(f, checkConfirm(form.Password, form.ConfirmPassword))
		default:
			return ErrUnknownField
		}
	}

	return errs.join()
}

func (v *FormValidator) validateLogin(form models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs.add(f, checkEmail(form.Email))
		case FieldPassword:
			errs.add(f, checkRequired(form.Password))
		default:
			return ErrUnknownField
		}
	}

	return errs.join()
}

func (v *FormValidator) validatePost(form models.PostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := checkRequired(form.Title); err != nil {
				errs.add(f, err)
			} else if utf8.RuneCountInString(form.Title) > TitleMaxLength {
				errs.add(f, ErrTitleTooLong)
			}
		case FieldContent:
			errs.add(f, checkRequired(form.Content))
		default:
			return ErrUnknownField
		}
	}

	return errs.join()
}

func (v *FormValidator) validateResetRequest(form models.ResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs.add(f, checkEmail(form.Email))
		default:
			return ErrUnknownField
		}
	}

	return errs.join()
}

// validatePassword checks a new password. The current password is only
// checked when asked for explicitly, since the reset form has none.
func (v *FormValidator) validatePassword(form models.PasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldConfirmPassword}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			errs.add(f, checkRequired(form.CurrentPassword))
		case FieldPassword:
			errs.add(f, checkNewPassword(form.Password))
		case FieldConfirmPassword:
			errs.add(f, checkConfirm(form.Password, form.ConfirmPassword))
		default:
			return ErrUnknownField
		}
	}

	return errs.join()
}

func (v *FormValidator) validateProfile(form models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPicture}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldUsername:
			errs.add(f, checkUsername(form.Username))
		case FieldEmail:
			errs.add(f, checkEmail(form.Email))
		case FieldPicture:
			if form.Picture != nil && !IsAllowedPicture(form.Picture.Filename) {
				errs.add(f, ErrPictureType)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.join()
}

// IsAllowedPicture reports whether filename has an accepted image extension.
func IsAllowedPicture(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedPictureExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func checkRequired(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequired
	}
	return nil
}

func checkUsername(username string) error {
	if err := checkRequired(username); err != nil {
		return err
	}
	n := utf8.RuneCountInString(username)
	if n < UsernameMinLength || n > UsernameMaxLength {
		return ErrUsernameLength
	}
	return nil
}

// checkEmail accepts a bare address such as "user@example.com". Display
// names ("User <user@example.com>") are rejected.
func checkEmail(email string) error {
	if err := checkRequired(email); err != nil {
		return err
	}
	if len(email) > EmailMaxLength {
		return ErrEmailTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func checkNewPassword(password string) error {
	if err := checkRequired(password); err != nil {
		return err
	}
	if len(password) > PasswordMaxLength {
		return ErrPasswordTooLong
	}
	return nil
}

func checkConfirm(password, confirm string) error {
	if err := checkRequired(confirm); err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMatch
	}
	return nil
}

type fieldErrors []error

func (e *fieldErrors) add(field string, reason error) {
	if reason != nil {
		*e = append(*e, NewFieldError(field, reason))
	}
}

func (e fieldErrors) join() error {
	return errors.Join(e...)
}

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("Login Unsuccessful. Please check email and password")
	ErrWrongPassword      = errors.New("wrong password")

	ErrUsernameTaken = errors.New("That username is taken. Please choose a different one.")
	ErrEmailTaken    = errors.New("That email is taken. Please choose a different one.")

	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("Please log in to access this page.")
	ErrInvalidPage  = errors.New("page must be a positive integer")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("That is an invalid or expired token")

	ErrHashingPassword       = errors.New("error hashing password")
	ErrProcessingPicture     = errors.New("error processing picture")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

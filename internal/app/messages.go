// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the notices the blog sends back to its users.
//
// They replace the flash messages of a server-rendered site: every Msg*
// constant ends up in the "message" field of a JSON response. Keeping them
// in one place keeps the wording consistent across handlers.
package app

const (
	// MsgInvalidForm accompanies a response whose "fields" lists the
	// per-field validation failures.
	MsgInvalidForm = "Please correct the errors below."

	// MsgAccountCreated is returned after a successful registration.
	MsgAccountCreated = "Your account has been created! You are now able to log in"

	MsgLoggedIn  = "You have been logged in!"
	MsgLoggedOut = "You have been logged out."

	MsgAccountUpdated  = "Your account has been updated!"
	MsgPasswordChanged = "Your password has been updated!"

	MsgPostCreated = "Your post has been created!"
	MsgPostUpdated = "Your post has been updated!"
	MsgPostDeleted = "Your post has been deleted!"

	// MsgResetRequested is sent whether or not the address belongs to an
	// account.
	MsgResetRequested = "An email has been sent with instructions to reset your password."

	// MsgPasswordReset is returned after a password was set through a
	// reset link.
	MsgPasswordReset = "Your password has been updated! You are now able to log in"
)

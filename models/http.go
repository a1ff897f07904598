package models

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// PostRequest is the create/update form for posts.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ResetRequest asks for a password reset email.
type ResetRequest struct {
	Email string `json:"email"`
}

// PasswordRequest sets a new password, either through a reset token or
// from the account page. CurrentPassword is only used by the latter.
type PasswordRequest struct {
	CurrentPassword string `json:"current_password,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

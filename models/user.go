package models

import "time"

// DefaultImageFile is the avatar every account starts with until the owner
// uploads a picture of their own.
const DefaultImageFile = "default.jpg"

// User represents a blog account.
// Username and Email are unique across all users.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public handle shown next to the user's posts.
	Username string `json:"username"`

	// Email is the unique address used for login and password recovery.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// ImageFile is the stored avatar file name (not a URL).
	ImageFile string `json:"image_file"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Author is the public projection of a User embedded into posts.
type Author struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	ImageFile string `json:"image_file"`
	ImageURL  string `json:"image_url,omitempty"`
}

// ProfileUpdate carries the new values for an account update.
// A nil Picture keeps the current avatar.
type ProfileUpdate struct {
	UserID   int64
	Username string
	Email    string
	Picture  *Upload
}

// Upload is a file received from a multipart form.
type Upload struct {
	Filename string
	Content  []byte
}

// Account is what the account endpoint returns: the user together with the
// resolved avatar URL.
type Account struct {
	User
	ImageURL string `json:"image_url"`
}

package models

import "time"

// User represents a registered account of the recipe application.
// PasswordHash is never serialized, so a User can be returned to clients as is.
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID int64 `json:"id"`

	// Username is the unique login name used during authentication.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// ProfilePicture is the name under which the user's picture is stored
	// in the picture storage. Nil until the first upload.
	ProfilePicture *string `json:"profilePicture"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the public view of a user shown on the profile page.
type Profile struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Picture is an uploaded profile picture held in memory.
type Picture struct {
	Content     []byte
	ContentType string
}

// Size returns the picture size in bytes.
func (p Picture) Size() int64 {
	return int64(len(p.Content))
}

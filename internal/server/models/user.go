package models

import "time"

// User is an account mirrored from the sign-up flow. PasswordHash is a
// bcrypt digest and never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken is a server-stored long-lived token that can be exchanged for
// a fresh access token until it expires.
type RefreshToken struct {
	UserID  string
	Expires time.Time
}

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user. It is used as
	// the opaque owner id on forms and is not exposed via JSON.
	UserID string `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name,omitempty"`

	// Password carries the plaintext password on register/login requests
	// only. It is never persisted; the store keeps a bcrypt hash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password. Persistence-layer
	// only, never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

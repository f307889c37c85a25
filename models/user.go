package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID, server-assigned).
	UserID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique e-mail address used during authentication.
	// Uniqueness is case-sensitive, exactly as stored.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to JSON and must never leave the server process.
	PasswordHash string `json:"-"`

	// Role is the authorization tag gating access to protected operations.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthenticatedUser is the identity resolved by the authentication middleware
// and attached to the request context for downstream authorization checks.
type AuthenticatedUser struct {
	// ID is the UserID extracted from the token's "sub" claim.
	ID string

	// Role is the role extracted from the token's custom "role" claim.
	Role Role
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies what a user account is allowed to do.
// Job mutations are restricted to employers and admins, while applying
// for a job is restricted to regular users.
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known role values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier. It is stored lower-cased so
	// that uniqueness is case-insensitive.
	Email string `json:"email"`

	// Role determines the authorization class of the account.
	// Defaults to RoleUser at registration.
	Role Role `json:"role"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext. It is
	// recomputed only when the plaintext password is set.
	PasswordHash string `json:"-"`

	// ResetPasswordToken holds the SHA-256 hex digest of an outstanding
	// password-reset secret. The plaintext secret is emailed to the user
	// and never persisted.
	ResetPasswordToken string `json:"-"`

	// ResetPasswordExpires is the expiry of the outstanding reset secret.
	ResetPasswordExpires *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

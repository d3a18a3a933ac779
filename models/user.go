package models

import "time"

// Role classifies an account for authorization purposes. Only RoleAdmin
// unlocks the administration screens.
type Role string

const (
	RoleDoctor           Role = "doctor"
	RoleHealthcareWorker Role = "healthcare_worker"
	RoleResearcher       Role = "researcher"
	RoleAdmin            Role = "admin"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDoctor, RoleHealthcareWorker, RoleResearcher, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It is the password-free public shape: this is the only user representation
// that may reach the session layer or the UI.
type User struct {
	// ID is the opaque unique identifier of the user.
	ID string `json:"id"`

	// Name is the display name of the user, non-sensitive.
	Name string `json:"name"`

	// Email uniquely identifies the account. Uniqueness and lookups are
	// case-insensitive.
	Email string `json:"email"`

	// Role is the account role used for authorization decisions.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created. Immutable.
	CreatedAt time.Time `json:"createdAt"`

	// IsBlocked marks an account refused at login. Absent means not blocked.
	// Admin accounts can never be blocked.
	IsBlocked bool `json:"isBlocked,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// StoredUser is the persistence-layer user record. It additionally carries
// the plaintext credential used by the local login fallback path.
//
// StoredUser values MUST stay inside the store and service layers; expose
// only the embedded User (via WithoutPassword) beyond that boundary.
type StoredUser struct {
	User

	// Password is the plaintext local-fallback credential.
	Password string `json:"password,omitempty"`
}

// WithoutPassword returns the public user record with the credential
// stripped.
func (u StoredUser) WithoutPassword() User {
	return u.User
}

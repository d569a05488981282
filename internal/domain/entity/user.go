// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity known to the system.
type User struct {
	ID        uuid.UUID // Opaque unique identifier.
	Username  string    // Unique, compared case-insensitively.
	Email     string    // Unique, compared case-insensitively.
	Password  string    // bcrypt hash. Never holds plaintext.
	Features  Features  // Grants drawn from the closed catalog.
	CreatedAt time.Time // Timestamp of when this user was registered.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// NewAnonymousUser builds the caller used for requests without a valid session.
func NewAnonymousUser() *User {
	return &User{Features: AnonymousFeatures()}
}

// IsAnonymous reports whether the user is the unauthenticated caller.
func (u *User) IsAnonymous() bool {
	return u.ID == uuid.Nil
}

// UserPatch carries the optional fields of a user update.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated browsing context.
// It is valid while ExpiresAt lies in the future.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	Token     string    // Opaque, unguessable value carried by the session cookie.
	UserID    uuid.UUID // The user this session authenticates. The session does not own the user.
	ExpiresAt time.Time // Slid forward on every authenticated request.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidAt reports whether the session is still usable at the given instant.
func (s *Session) IsValidAt(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// ActivationToken is a single-use credential that promotes a new user's features.
type ActivationToken struct {
	ID        uuid.UUID  // Delivered to the user inside the activation link.
	UserID    uuid.UUID  // The user this token activates.
	UsedAt    *time.Time // Set exactly once, when the token is consumed.
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidAt reports whether the token is unused and unexpired at the given instant.
func (t *ActivationToken) IsValidAt(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}

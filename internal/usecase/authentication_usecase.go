// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bonsai/internal/domain/entity"
)

// AuthenticationUsecase verifies credentials.
type AuthenticationUsecase interface {
	// Authenticate returns the user owning email if password matches its hash.
	// An unknown email and a wrong password fail with the same Unauthorized error.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

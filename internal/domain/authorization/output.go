package authorization

import (
	"time"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"

	"github.com/google/uuid"
)

// PublicUserOutput is a user as seen by anyone allowed to read users.
type PublicUserOutput struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Features  []string  `json:"features"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrivateUserOutput is a user as seen by itself.
type PrivateUserOutput struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Features  []string  `json:"features"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionOutput is a session as seen by its owner.
type SessionOutput struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivationTokenOutput is an activation token.
type ActivationTokenOutput struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	UsedAt    *time.Time `json:"used_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MigrationOutput is one pending or applied migration.
type MigrationOutput struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// StatusOutput is the diagnostic snapshot.
type StatusOutput struct {
	UpdatedAt    time.Time                `json:"updated_at"`
	Dependencies StatusDependenciesOutput `json:"dependencies"`
}

// StatusDependenciesOutput groups dependency reports.
type StatusDependenciesOutput struct {
	Database DatabaseStatusOutput `json:"database"`
}

// DatabaseStatusOutput omits Version unless the caller holds read:status:all.
type DatabaseStatusOutput struct {
	Version           *string `json:"version,omitempty"`
	MaxConnections    int     `json:"max_connections"`
	OpenedConnections int     `json:"opened_connections"`
}

// FilterOutput projects a persisted entity down to the fields feature lets
// caller see. Credential hashes are never part of any projection. A nil result
// with a nil error means nothing is visible to this caller.
func FilterOutput(caller *entity.User, feature entity.Feature, output any) (any, error) {
	if err := validateCaller(caller); err != nil {
		return nil, err
	}
	if err := validateFeature(feature); err != nil {
		return nil, err
	}
	if err := validateOutput(output); err != nil {
		return nil, err
	}

	switch feature {
	case entity.FeatureReadUser, entity.FeatureUpdateUser:
		user, err := outputAs[*entity.User](feature, output)
		if err != nil {
			return nil, err
		}

		return toPublicUser(user), nil

	case entity.FeatureReadUserSelf:
		user, err := outputAs[*entity.User](feature, output)
		if err != nil {
			return nil, err
		}
		if !isSelf(caller, user) {
			return nil, nil
		}

		return toPrivateUser(user), nil

	case entity.FeatureCreateUser:
		// The registrant just submitted these fields; email is echoed back.
		user, err := outputAs[*entity.User](feature, output)
		if err != nil {
			return nil, err
		}

		return toPrivateUser(user), nil

	case entity.FeatureCreateSession, entity.FeatureReadSession, entity.FeatureDeleteSession:
		session, err := outputAs[*entity.Session](feature, output)
		if err != nil {
			return nil, err
		}
		// A created session was just minted for whoever authenticated, which
		// may differ from the caller the request arrived with.
		if feature == entity.FeatureCreateSession {
			return toSession(session), nil
		}
		if caller.IsAnonymous() || caller.ID != session.UserID {
			return nil, nil
		}

		return toSession(session), nil

	case entity.FeatureReadActivationToken:
		token, err := outputAs[*entity.ActivationToken](feature, output)
		if err != nil {
			return nil, err
		}

		return toActivationToken(token), nil

	case entity.FeatureReadMigration, entity.FeatureCreateMigration:
		migrations, err := outputAs[[]entity.Migration](feature, output)
		if err != nil {
			return nil, err
		}

		filtered := make([]MigrationOutput, 0, len(migrations))
		for _, migration := range migrations {
			filtered = append(filtered, MigrationOutput{
				Path:      migration.Path,
				Name:      migration.Name,
				Timestamp: migration.Timestamp,
			})
		}

		return filtered, nil

	case entity.FeatureReadStatus:
		status, err := outputAs[*entity.Status](feature, output)
		if err != nil {
			return nil, err
		}

		return toStatus(caller, status), nil
	}

	return nil, nil
}

func toPublicUser(user *entity.User) *PublicUserOutput {
	return &PublicUserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Features:  user.Features.ToStrings(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toPrivateUser(user *entity.User) *PrivateUserOutput {
	return &PrivateUserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Features:  user.Features.ToStrings(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toSession(session *entity.Session) *SessionOutput {
	return &SessionOutput{
		ID:        session.ID,
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func toActivationToken(token *entity.ActivationToken) *ActivationTokenOutput {
	return &ActivationTokenOutput{
		ID:        token.ID,
		UserID:    token.UserID,
		UsedAt:    token.UsedAt,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
		UpdatedAt: token.UpdatedAt,
	}
}

func toStatus(caller *entity.User, status *entity.Status) *StatusOutput {
	database := DatabaseStatusOutput{
		MaxConnections:    status.Dependencies.Database.MaxConnections,
		OpenedConnections: status.Dependencies.Database.OpenedConnections,
	}

	// Nested fields are gated by an additional grant.
	if caller.Features.Contains(entity.FeatureReadStatusAll) {
		version := status.Dependencies.Database.Version
		database.Version = &version
	}

	return &StatusOutput{
		UpdatedAt: status.UpdatedAt,
		Dependencies: StatusDependenciesOutput{
			Database: database,
		},
	}
}

func outputAs[T any](feature entity.Feature, output any) (T, error) {
	typed, ok := output.(T)
	if !ok {
		var zero T

		return zero, domainerrors.Internal("output type does not match feature " + `"` + feature.String() + `"`)
	}

	return typed, nil
}

func validateOutput(output any) error {
	missing := false
	switch o := output.(type) {
	case nil:
		missing = true
	case *entity.User:
		missing = o == nil
	case *entity.Session:
		missing = o == nil
	case *entity.ActivationToken:
		missing = o == nil
	case *entity.Status:
		missing = o == nil
	}

	if missing {
		return domainerrors.Internal("an output to filter is required")
	}

	return nil
}

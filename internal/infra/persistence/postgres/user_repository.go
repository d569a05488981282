// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	"bonsai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface with raw statements over GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user and copies the generated ID and timestamps back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	var userM model.UserModel
	_, err := query(ctx, repo.db, Statement{
		Text: `
			INSERT INTO users (username, email, password, features)
			VALUES (?, ?, ?, ?)
			RETURNING *`,
		Values: []any{user.Username, user.Email, user.Password, toFeatureColumn(user.Features)},
	}, &userM)
	if err != nil {
		return translateUserWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, Statement{
		Text:   `SELECT * FROM users WHERE id = ? LIMIT 1`,
		Values: []any{id},
	}, "failed to find user by id")
}

// FindByUsername retrieves a single user by username, ignoring case.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, Statement{
		Text:   `SELECT * FROM users WHERE LOWER(username) = LOWER(?) LIMIT 1`,
		Values: []any{username},
	}, "failed to find user by username")
}

// FindByEmail retrieves a single user by email address, ignoring case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, Statement{
		Text:   `SELECT * FROM users WHERE LOWER(email) = LOWER(?) LIMIT 1`,
		Values: []any{email},
	}, "failed to find user by email")
}

// Update overwrites the credential fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	var userM model.UserModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			UPDATE users
			SET username = ?, email = ?, password = ?, updated_at = timezone('utc', now())
			WHERE id = ?
			RETURNING *`,
		Values: []any{user.Username, user.Email, user.Password, user.ID},
	}, &userM)
	if err != nil {
		return nil, translateUserWriteError(err, "failed to update user")
	}
	if rows == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// SetFeatures replaces the whole feature set of a user.
func (repo *userRepository) SetFeatures(ctx context.Context, id uuid.UUID, features entity.Features) (*entity.User, error) {
	var userM model.UserModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			UPDATE users
			SET features = ?, updated_at = timezone('utc', now())
			WHERE id = ?
			RETURNING *`,
		Values: []any{toFeatureColumn(features), id},
	}, &userM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to set user features")
	}
	if rows == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) findOne(ctx context.Context, stmt Statement, failure string) (*entity.User, error) {
	var userM model.UserModel
	rows, err := query(ctx, repo.db, stmt, &userM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}
	if rows == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// translateUserWriteError maps unique index violations that slipped past the
// use case checks onto the same validation errors those checks produce.
func translateUserWriteError(err error, failure string) error {
	if isUniqueConstraintViolation(err) {
		switch violatedConstraint(err) {
		case usernameUniqueIndex:
			return errors.Wrap(domainerrors.ErrUsernameInUse, failure)
		case emailUniqueIndex:
			return errors.Wrap(domainerrors.ErrEmailInUse, failure)
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, failure)
	}

	return domainerrors.NewDatabaseExecuteError(err, failure)
}

func toFeatureColumn(features entity.Features) datatypes.JSONSlice[string] {
	return datatypes.NewJSONSlice(features.ToStrings())
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		Password:  data.Password,
		Features:  entity.FeaturesFromStrings(data.Features),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package impl

import (
	"context"
	"testing"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	mockRepo "bonsai/internal/mocks/repository"
	mockService "bonsai/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationService_Authenticate_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewAuthenticationService(userRepo, hasher, newDiscardLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Password: "hash", Features: entity.ActivatedUserFeatures()}

	userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	hasher.EXPECT().Verify("secret", "hash").Return(true, nil)

	result, err := service.Authenticate(ctx, "ana@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, user.ID, result.ID)
}

func TestAuthenticationService_Authenticate_UnknownEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewAuthenticationService(userRepo, hasher, newDiscardLogger())

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	result, err := service.Authenticate(ctx, "ghost@example.com", "secret")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthenticationService_Authenticate_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewAuthenticationService(userRepo, hasher, newDiscardLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Password: "hash"}
	userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	hasher.EXPECT().Verify("wrong", "hash").Return(false, nil)

	result, err := service.Authenticate(ctx, "ana@example.com", "wrong")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthenticationService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	s := newTestServices()
	s.seedUser("ana", "ana@example.com", "secret", entity.ActivatedUserFeatures())
	ctx := context.Background()

	_, unknownErr := s.authentication.Authenticate(ctx, "ghost@example.com", "secret")
	_, wrongErr := s.authentication.Authenticate(ctx, "ana@example.com", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(unknownErr))
	assert.Equal(t, domainerrors.KindOf(unknownErr), domainerrors.KindOf(wrongErr))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthenticationService_Authenticate_EmailIsCaseInsensitive(t *testing.T) {
	s := newTestServices()
	seeded := s.seedUser("ana", "Ana@Example.com", "secret", entity.ActivatedUserFeatures())

	user, err := s.authentication.Authenticate(context.Background(), "ana@example.COM", "secret")

	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
}

func TestAuthenticationService_Authenticate_PropagatesInfrastructureErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	t.Run("store failure", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockService.NewMockPasswordHasher(t)
		service := NewAuthenticationService(userRepo, hasher, newDiscardLogger())

		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, storeErr)

		_, err := service.Authenticate(ctx, "ana@example.com", "secret")

		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("hasher failure", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockService.NewMockPasswordHasher(t)
		service := NewAuthenticationService(userRepo, hasher, newDiscardLogger())

		hashErr := errors.New("malformed hash")
		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.User{Password: "bad"}, nil)
		hasher.EXPECT().Verify("secret", "bad").Return(false, hashErr)

		_, err := service.Authenticate(ctx, "ana@example.com", "secret")

		assert.ErrorIs(t, err, hashErr)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

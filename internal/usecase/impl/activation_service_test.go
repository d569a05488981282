package impl

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	domainservice "bonsai/internal/domain/service"
	mockRepo "bonsai/internal/mocks/repository"
	mockService "bonsai/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestActivationService_Issue_SetsExpiry(t *testing.T) {
	s := newTestServices()
	user := s.seedUser("ana", "ana@example.com", "secret", entity.DefaultUserFeatures())

	token, err := s.activation.Issue(context.Background(), user.ID)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.Equal(t, user.ID, token.UserID)
	assert.Nil(t, token.UsedAt)
	assert.Equal(t, s.clock.Now().Add(testActivationTTL), token.ExpiresAt)
}

func TestActivationService_Issue_UnknownUser(t *testing.T) {
	s := newTestServices()

	_, err := s.activation.Issue(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestActivationService_FindValid(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh token", func(t *testing.T) {
		s := newTestServices()
		user := s.seedUser("ana", "ana@example.com", "secret", entity.DefaultUserFeatures())
		issued, err := s.activation.Issue(ctx, user.ID)
		require.NoError(t, err)

		found, err := s.activation.FindValid(ctx, issued.ID)

		require.NoError(t, err)
		assert.Equal(t, issued.ID, found.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		s := newTestServices()

		_, err := s.activation.FindValid(ctx, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		s := newTestServices()
		user := s.seedUser("ana", "ana@example.com", "secret", entity.DefaultUserFeatures())
		issued, err := s.activation.Issue(ctx, user.ID)
		require.NoError(t, err)

		s.clock.Advance(testActivationTTL + time.Second)

		_, err = s.activation.FindValid(ctx, issued.ID)
		assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)

		_, err = s.activation.Consume(ctx, issued.ID)
		assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		tokenRepo := mockRepo.NewMockActivationTokenRepository(t)
		service := NewActivationService(ActivationServiceParams{
			TokenRepo: tokenRepo,
			Clock:     newFakeClock().Now,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		})

		storeErr := errors.New("connection reset")
		tokenRepo.EXPECT().FindValidByID(ctx, mock.Anything, mock.Anything).Return(nil, storeErr)

		_, err := service.FindValid(ctx, uuid.New())

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestActivationService_Consume_OnlyOnce(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()
	user := s.seedUser("ana", "ana@example.com", "secret", entity.DefaultUserFeatures())
	issued, err := s.activation.Issue(ctx, user.ID)
	require.NoError(t, err)

	consumed, err := s.activation.Consume(ctx, issued.ID)
	require.NoError(t, err)
	require.NotNil(t, consumed.UsedAt)
	assert.Equal(t, s.clock.Now(), *consumed.UsedAt)

	_, err = s.activation.Consume(ctx, issued.ID)
	assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)

	_, err = s.activation.FindValid(ctx, issued.ID)
	assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)
}

func TestActivationService_Consume_ConcurrentCallersSingleWinner(t *testing.T) {
	const callers = 32

	s := newTestServices()
	ctx := context.Background()
	user := s.seedUser("ana", "ana@example.com", "secret", entity.DefaultUserFeatures())
	issued, err := s.activation.Issue(ctx, user.ID)
	require.NoError(t, err)

	var succeeded, notFound atomic.Int32
	start := make(chan struct{})

	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			<-start
			_, err := s.activation.Consume(ctx, issued.ID)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrActivationTokenNotFound):
				notFound.Add(1)
			default:
				return err
			}

			return nil
		})
	}
	close(start)

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), notFound.Load())

	_, err = s.activation.FindValid(ctx, issued.ID)
	assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)
	_, err = s.activation.Consume(ctx, issued.ID)
	assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)
}

func TestActivationService_Promote(t *testing.T) {
	ctx := context.Background()

	t.Run("default user becomes activated", func(t *testing.T) {
		s := newTestServices()
		user := s.seedUser("ana", "ana@example.com", "secret", entity.DefaultUserFeatures())

		promoted, err := s.activation.Promote(ctx, user.ID)

		require.NoError(t, err)
		assert.ElementsMatch(t, entity.ActivatedUserFeatures(), promoted.Features)
		assert.False(t, promoted.Features.Contains(entity.FeatureReadActivationToken))
	})

	t.Run("already activated user is rejected", func(t *testing.T) {
		s := newTestServices()
		user := s.seedUser("ana", "ana@example.com", "secret", entity.ActivatedUserFeatures())

		_, err := s.activation.Promote(ctx, user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrActivationNotAllowed)
		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		s := newTestServices()

		_, err := s.activation.Promote(ctx, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestActivationService_Activate_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	clock := newFakeClock()
	service := NewActivationService(ActivationServiceParams{
		TxManager: txManager,
		Clock:     clock.Now,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()
	now := clock.Now()
	token := &entity.ActivationToken{ID: tokenID, UserID: userID, ExpiresAt: now.Add(time.Minute)}
	usedAt := now
	consumed := &entity.ActivationToken{ID: tokenID, UserID: userID, UsedAt: &usedAt, ExpiresAt: token.ExpiresAt}
	user := &entity.User{ID: userID, Features: entity.DefaultUserFeatures()}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockActivationTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ActivationTokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockTokenRepo.EXPECT().FindValidByID(ctx, tokenID, now).Return(token, nil)
			mockTokenRepo.EXPECT().MarkUsed(ctx, tokenID, now).Return(consumed, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().SetFeatures(ctx, userID, entity.ActivatedUserFeatures()).
				Return(&entity.User{ID: userID, Features: entity.ActivatedUserFeatures()}, nil)

			return fn(mockFactory)
		})

	result, err := service.Activate(ctx, tokenID)

	require.NoError(t, err)
	assert.Equal(t, tokenID, result.ID)
	assert.NotNil(t, result.UsedAt)
}

func TestActivationService_Activate_RejectedPromotionLeavesTokenUnused(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	clock := newFakeClock()
	service := NewActivationService(ActivationServiceParams{
		TxManager: txManager,
		Clock:     clock.Now,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()
	now := clock.Now()
	usedAt := now

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockActivationTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ActivationTokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockTokenRepo.EXPECT().FindValidByID(ctx, tokenID, now).
				Return(&entity.ActivationToken{ID: tokenID, UserID: userID}, nil)
			mockTokenRepo.EXPECT().MarkUsed(ctx, tokenID, now).
				Return(&entity.ActivationToken{ID: tokenID, UserID: userID, UsedAt: &usedAt}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Features: entity.ActivatedUserFeatures()}, nil)

			// The transaction manager rolls back whatever fn did when it errors.
			return fn(mockFactory)
		})

	_, err := service.Activate(ctx, tokenID)

	assert.ErrorIs(t, err, domainerrors.ErrActivationNotAllowed)
}

func TestActivationService_Activate_UnknownToken(t *testing.T) {
	s := newTestServices()

	_, err := s.activation.Activate(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrActivationTokenNotFound)
}

func TestActivationService_SendEmail(t *testing.T) {
	mailer := mockService.NewMockMailer(t)
	service := NewActivationService(ActivationServiceParams{
		Mailer: mailer,
		Clock:  newFakeClock().Now,
		Config: newTestConfig(),
		Logger: newDiscardLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "ana", Email: "ana@example.com"}
	token := &entity.ActivationToken{ID: uuid.New(), UserID: user.ID}

	mailer.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, service.SendEmail(ctx, user, token))

	sent := mailer.Calls[0].Arguments.Get(1).(*domainservice.Email)
	assert.Equal(t, "Contato <contato@meubonsai.app>", sent.From)
	assert.Equal(t, "ana@example.com", sent.To)
	assert.Equal(t, activationEmailSubject, sent.Subject)
	assert.True(t, strings.HasPrefix(sent.Text, "ana, clique no link abaixo"))
	assert.Contains(t, sent.Text, testOrigin+"/cadastro/ativar/"+token.ID.String())
}

func TestActivationService_SendEmail_MailerFailure(t *testing.T) {
	mailer := mockService.NewMockMailer(t)
	service := NewActivationService(ActivationServiceParams{
		Mailer: mailer,
		Clock:  newFakeClock().Now,
		Config: newTestConfig(),
		Logger: newDiscardLogger(),
	})

	ctx := context.Background()
	mailErr := errors.New("smtp unavailable")
	mailer.EXPECT().Send(ctx, mock.Anything).Return(mailErr)

	err := service.SendEmail(ctx, &entity.User{Email: "ana@example.com"}, &entity.ActivationToken{ID: uuid.New()})

	assert.ErrorIs(t, err, mailErr)
}

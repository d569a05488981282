package authorization

import (
	"testing"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(features ...entity.Feature) *entity.User {
	return &entity.User{ID: uuid.New(), Username: "ana", Email: "ana@example.com", Password: "hash", Features: features}
}

func TestCan_Membership(t *testing.T) {
	tests := []struct {
		name     string
		caller   *entity.User
		feature  entity.Feature
		expected bool
	}{
		{"anonymous may register", entity.NewAnonymousUser(), entity.FeatureCreateUser, true},
		{"anonymous may log in", entity.NewAnonymousUser(), entity.FeatureCreateSession, true},
		{"anonymous may activate", entity.NewAnonymousUser(), entity.FeatureReadActivationToken, true},
		{"anonymous may not read session", entity.NewAnonymousUser(), entity.FeatureReadSession, false},
		{"default user may activate", newUser(entity.DefaultUserFeatures()...), entity.FeatureReadActivationToken, true},
		{"default user may not log in", newUser(entity.DefaultUserFeatures()...), entity.FeatureCreateSession, false},
		{"activated user may log in", newUser(entity.ActivatedUserFeatures()...), entity.FeatureCreateSession, true},
		{"activated user may not activate", newUser(entity.ActivatedUserFeatures()...), entity.FeatureReadActivationToken, false},
		{"empty features", newUser(), entity.FeatureReadStatus, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := Can(tt.caller, tt.feature, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, allowed)
		})
	}
}

func TestCan_UpdateUserScopedToResource(t *testing.T) {
	self := newUser(entity.FeatureUpdateUser)
	other := newUser(entity.FeatureUpdateUser)
	admin := newUser(entity.FeatureUpdateUser, entity.FeatureUpdateUserOthers)

	allowed, err := Can(self, entity.FeatureUpdateUser, self)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = Can(self, entity.FeatureUpdateUser, other)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = Can(admin, entity.FeatureUpdateUser, other)
	require.NoError(t, err)
	assert.True(t, allowed)

	// Without a resource the blanket grant decides.
	allowed, err = Can(self, entity.FeatureUpdateUser, nil)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCan_AnonymousNeverMatchesResource(t *testing.T) {
	anonymous := &entity.User{Features: entity.Features{entity.FeatureUpdateUser}}
	resource := &entity.User{Features: entity.Features{}}

	allowed, err := Can(anonymous, entity.FeatureUpdateUser, resource)

	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCan_PreconditionViolations(t *testing.T) {
	tests := []struct {
		name    string
		caller  *entity.User
		feature entity.Feature
	}{
		{"nil caller", nil, entity.FeatureReadUser},
		{"caller without features", &entity.User{ID: uuid.New()}, entity.FeatureReadUser},
		{"unknown feature", newUser(entity.FeatureReadUser), entity.Feature("delete:universe")},
		{"empty feature", newUser(entity.FeatureReadUser), entity.Feature("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := Can(tt.caller, tt.feature, nil)

			assert.False(t, allowed)
			require.Error(t, err)
			assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
		})
	}
}

func TestRequire(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		assert.NoError(t, Require(newUser(entity.FeatureReadStatus), entity.FeatureReadStatus, nil))
	})

	t.Run("forbidden names the feature", func(t *testing.T) {
		err := Require(newUser(), entity.FeatureReadMigration, nil)

		require.Error(t, err)
		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Action(), `"read:migration"`)
	})

	t.Run("updating another user", func(t *testing.T) {
		caller := newUser(entity.FeatureUpdateUser)

		err := Require(caller, entity.FeatureUpdateUser, newUser())

		assert.ErrorIs(t, err, domainerrors.ErrCannotUpdateOtherUser)
	})
}

package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bonsai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetCaller_DefaultsToAnonymous(t *testing.T) {
	c := newEchoContext()

	caller := GetCaller(c)

	assert.True(t, caller.IsAnonymous())
	assert.ElementsMatch(t, entity.AnonymousFeatures(), caller.Features)
	assert.Nil(t, GetSession(c))
}

func TestBeginRequest(t *testing.T) {
	c := newEchoContext()
	buf := &bytes.Buffer{}

	BeginRequest(c, "req-1", slog.New(slog.NewTextHandler(buf, nil)))

	assert.Equal(t, "req-1", RequestID(c))
	assert.Equal(t, "req-1", RequestIDFromContext(c.Request().Context()))

	logger := LoggerFromContext(c.Request().Context())
	require.NotNil(t, logger)
	logger.Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestAuthenticate_TagsLoggerWithUser(t *testing.T) {
	c := newEchoContext()
	buf := &bytes.Buffer{}
	BeginRequest(c, "req-1", slog.New(slog.NewTextHandler(buf, nil)))

	user := &entity.User{ID: uuid.New(), Features: entity.ActivatedUserFeatures()}
	session := &entity.Session{ID: uuid.New(), UserID: user.ID}
	Authenticate(c, user, session)

	assert.Equal(t, user, GetCaller(c))
	assert.Equal(t, session, GetSession(c))

	GetLoggerOrDefault(c.Request().Context(), slog.Default()).Info("acting")
	assert.Contains(t, buf.String(), "user_id="+user.ID.String())
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestAuthenticate_WithoutRequestLogger(t *testing.T) {
	c := newEchoContext()
	user := &entity.User{ID: uuid.New(), Features: entity.ActivatedUserFeatures()}

	Authenticate(c, user, &entity.Session{ID: uuid.New(), UserID: user.ID})

	assert.Equal(t, user, GetCaller(c))
	assert.Nil(t, LoggerFromContext(c.Request().Context()))
}

func TestStaleSessionMark(t *testing.T) {
	c := newEchoContext()
	assert.False(t, HasStaleSession(c))

	MarkStaleSession(c)

	assert.True(t, HasStaleSession(c))
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

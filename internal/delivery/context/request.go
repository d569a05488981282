// Package context carries per-request state from the HTTP layer down to the
// use cases: the request id, a logger tagged with it, and the resolved caller.
package context

import (
	"context"
	"log/slog"

	"bonsai/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored on echo.Context and context.Context.
type ContextKey string

const (
	KeyRequestID    ContextKey = "request_id"
	KeyLogger       ContextKey = "logger"
	KeyCaller       ContextKey = "caller"
	KeySession      ContextKey = "session"
	KeyStaleSession ContextKey = "stale_session"

	// HeaderXRequestID is read from clients and echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// BeginRequest records requestID on c and on the request context, together with
// a logger derived from base that tags every line with it.
func BeginRequest(c echo.Context, requestID string, base *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), KeyRequestID, requestID)
	ctx = WithLogger(ctx, base.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the id recorded by BeginRequest, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// RequestIDFromContext returns the id recorded by BeginRequest, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// LoggerFromContext returns the request logger, or nil outside a request.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

// Authenticate records the caller resolved from session and adds user_id to
// the request logger, so use case logs name the acting user.
func Authenticate(c echo.Context, user *entity.User, session *entity.Session) {
	SetCaller(c, user)
	c.Set(string(KeySession), session)

	ctx := c.Request().Context()
	if logger := LoggerFromContext(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// SetCaller stores the user performing the request.
func SetCaller(c echo.Context, user *entity.User) {
	c.Set(string(KeyCaller), user)
}

// GetCaller returns the user performing the request. Requests that never went
// through the session middleware act as anonymous.
func GetCaller(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyCaller)).(*entity.User); ok && user != nil {
		return user
	}

	return entity.NewAnonymousUser()
}

// GetSession returns the session that authenticated the request, or nil.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(string(KeySession)).(*entity.Session)

	return session
}

// MarkStaleSession records that the request carried a session cookie which no
// longer resolves.
func MarkStaleSession(c echo.Context) {
	c.Set(string(KeyStaleSession), true)
}

// HasStaleSession reports whether MarkStaleSession was called for this request.
func HasStaleSession(c echo.Context) bool {
	stale, _ := c.Get(string(KeyStaleSession)).(bool)

	return stale
}

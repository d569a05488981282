package middleware

import (
	"log/slog"

	"bonsai/internal/delivery/http/cookie"
	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/domain/authorization"
	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the caller from the session cookie and gates routes by feature.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	cookie    *cookie.SessionCookie
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, sessionCookie *cookie.SessionCookie, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, cookie: sessionCookie, logger: logger}
}

// InjectCaller puts the caller into the context for every request. A valid
// cookie yields its user and slides the session forward; no cookie yields the
// anonymous user; a cookie that no longer resolves is cleared and the request
// continues as anonymous.
func (m *AuthMiddleware) InjectCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.cookie.Read(c)
		if !ok {
			deliverycontext.SetCaller(c, entity.NewAnonymousUser())

			return next(c)
		}

		ctx := c.Request().Context()
		user, session, err := m.sessionUC.ResolveCaller(ctx, token)
		if err != nil {
			if !domainerrors.IsKind(err, domainerrors.KindNotFound) {
				return errors.WithStack(err)
			}

			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Discarding stale session cookie")
			m.cookie.Clear(c)
			deliverycontext.MarkStaleSession(c)
			deliverycontext.SetCaller(c, entity.NewAnonymousUser())

			return next(c)
		}

		m.cookie.Set(c, session)
		deliverycontext.Authenticate(c, user, session)

		return next(c)
	}
}

// CanRequest rejects callers lacking feature. A caller that arrived with a
// stale session gets SessionInvalid instead of Forbidden so clients know to log in again.
func (m *AuthMiddleware) CanRequest(feature entity.Feature) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := authorization.Require(deliverycontext.GetCaller(c), feature, nil)
			if err == nil {
				return next(c)
			}

			if deliverycontext.HasStaleSession(c) && domainerrors.IsKind(err, domainerrors.KindForbidden) {
				return domainerrors.ErrSessionInvalid
			}

			return err
		}
	}
}

// Package cookie writes and reads the session cookie.
package cookie

import (
	"net/http"
	"time"

	"bonsai/config"
	"bonsai/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionCookie carries the session token between requests.
type SessionCookie struct {
	name   string
	secure bool
	now    func() time.Time
}

// NewSessionCookie is the constructor for SessionCookie.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	return &SessionCookie{
		name:   cfg.Auth.SessionCookieName,
		secure: cfg.Auth.SecureCookie,
		now:    time.Now,
	}
}

// Read returns the token carried by the request, if any.
func (sc *SessionCookie) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(sc.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// Set writes session's token with a lifetime matching its expiry.
func (sc *SessionCookie) Set(c echo.Context, session *entity.Session) {
	maxAge := int(session.ExpiresAt.Sub(sc.now()).Seconds())
	if maxAge <= 0 {
		sc.Clear(c)

		return
	}

	c.SetCookie(&http.Cookie{
		Name:     sc.name,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   sc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear tells the client to drop the cookie.
func (sc *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.name,
		Value:    "invalid",
		Path:     "/",
		MaxAge:   -1,
		Secure:   sc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

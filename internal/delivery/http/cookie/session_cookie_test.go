package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bonsai/config"
	"bonsai/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookie(now time.Time) *SessionCookie {
	sc := NewSessionCookie(&config.Config{Auth: &config.AuthConfig{SessionCookieName: "session_id", SecureCookie: true}})
	sc.now = func() time.Time { return now }

	return sc
}

func TestSessionCookie_SetAndRead(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	sc := newTestCookie(now)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	sc.Set(c, &entity.Session{Token: "abc", ExpiresAt: now.Add(time.Hour)})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	token, ok := sc.Read(e.NewContext(req, httptest.NewRecorder()))
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestSessionCookie_ReadMissing(t *testing.T) {
	sc := newTestCookie(time.Now())
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := sc.Read(c)

	assert.False(t, ok)
}

func TestSessionCookie_SetExpiredSessionClears(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	sc := newTestCookie(now)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	sc.Set(c, &entity.Session{Token: "abc", ExpiresAt: now.Add(-time.Hour)})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "invalid", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

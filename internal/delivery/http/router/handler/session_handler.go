package handler

import (
	"bonsai/internal/delivery/http/cookie"
	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/delivery/http/response"
	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginRequest is the body of POST /sessions.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// SessionHandler logs users in and out.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	cookie *cookie.SessionCookie
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, sessionCookie *cookie.SessionCookie) *SessionHandler {
	return &SessionHandler{uc: uc, cookie: sessionCookie}
}

// Login opens a session and hands its token back in a cookie.
func (h *SessionHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	session, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, session)

	return response.Created(c, entity.FeatureCreateSession, session)
}

// Logout expires the caller's session and clears the cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return domainerrors.ErrSessionInvalid
	}

	expired, err := h.uc.Expire(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Clear(c)

	return response.OK(c, entity.FeatureDeleteSession, expired)
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/delivery/http/response"
	"bonsai/internal/domain/entity"
	"bonsai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,alphanum,max=30"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// UpdateUserRequest is the body of PATCH /users/:username. Absent fields are left alone.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,alphanum,max=30"`
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Password *string `json:"password" validate:"omitempty,min=8,maxbytes=72"`
}

type usernameParam struct {
	Username string `param:"username" validate:"required,alphanum,max=30"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input RegisterUserRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, entity.FeatureCreateUser, user)
}

// GetUser returns the public view of a user.
func (h *UserHandler) GetUser(c echo.Context) error {
	var param usernameParam
	if err := bindAndValidate(c, &param); err != nil {
		return err
	}

	user, err := h.uc.FindByUsername(c.Request().Context(), param.Username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, entity.FeatureReadUser, user)
}

// UpdateUser patches a user. Updating someone else needs update:user:others.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var param usernameParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &param); err != nil {
		return err
	}
	if err := c.Validate(&param); err != nil {
		return err
	}

	var input UpdateUserRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), deliverycontext.GetCaller(c), param.Username, &entity.UserPatch{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, entity.FeatureUpdateUser, user)
}

// GetCurrentUser returns the caller itself. The session was already renewed
// and its cookie refreshed while resolving the caller.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	response.NoStore(c)

	return response.OK(c, entity.FeatureReadUserSelf, deliverycontext.GetCaller(c))
}

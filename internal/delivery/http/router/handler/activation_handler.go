package handler

import (
	"bonsai/internal/delivery/http/response"
	"bonsai/internal/domain/entity"
	"bonsai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type activationParam struct {
	TokenID string `param:"token_id" validate:"required,uuid"`
}

// ActivationHandler consumes activation links.
type ActivationHandler struct {
	uc usecase.ActivationUsecase
}

// NewActivationHandler is the constructor for ActivationHandler, injected by Fx.
func NewActivationHandler(uc usecase.ActivationUsecase) *ActivationHandler {
	return &ActivationHandler{uc: uc}
}

// Activate consumes the token and promotes its user.
func (h *ActivationHandler) Activate(c echo.Context) error {
	var param activationParam
	if err := bindAndValidate(c, &param); err != nil {
		return err
	}

	token, err := h.uc.Activate(c.Request().Context(), uuid.MustParse(param.TokenID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, entity.FeatureReadActivationToken, token)
}

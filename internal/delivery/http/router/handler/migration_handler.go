package handler

import (
	"net/http"

	"bonsai/internal/delivery/http/response"
	"bonsai/internal/domain/entity"
	"bonsai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MigrationHandler lists and runs schema migrations.
type MigrationHandler struct {
	uc usecase.MigrationUsecase
}

// NewMigrationHandler is the constructor for MigrationHandler, injected by Fx.
func NewMigrationHandler(uc usecase.MigrationUsecase) *MigrationHandler {
	return &MigrationHandler{uc: uc}
}

// ListPending is a dry run.
func (h *MigrationHandler) ListPending(c echo.Context) error {
	pending, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, entity.FeatureReadMigration, pending)
}

// RunPending answers 201 when something was applied and 200 otherwise.
func (h *MigrationHandler) RunPending(c echo.Context) error {
	applied, err := h.uc.RunPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	statusCode := http.StatusOK
	if len(applied) > 0 {
		statusCode = http.StatusCreated
	}

	return response.Filtered(c, statusCode, entity.FeatureCreateMigration, applied)
}

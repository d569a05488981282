package handler

import (
	"net/http"

	"bonsai/internal/delivery/http/response"
	"bonsai/internal/domain/entity"
	"bonsai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatusHandler serves the diagnostic snapshot.
type StatusHandler struct {
	uc usecase.StatusUsecase
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// GetStatus is public; the database version is only shown to read:status:all holders.
func (h *StatusHandler) GetStatus(c echo.Context) error {
	status, err := h.uc.GetStatus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, entity.FeatureReadStatus, status)
}

// HealthCheck is a liveness probe that touches no dependency.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

package handler

import (
	domainerrors "bonsai/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into input and runs its validate tags.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return c.Validate(input)
}

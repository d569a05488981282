// Package response writes successful API responses.
package response

import (
	"net/http"

	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/domain/authorization"
	"bonsai/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Filtered projects output to what the request's caller may see under feature
// and writes it as JSON.
func Filtered(c echo.Context, statusCode int, feature entity.Feature, output any) error {
	filtered, err := authorization.FilterOutput(deliverycontext.GetCaller(c), feature, output)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(statusCode, filtered)
}

// OK writes a filtered 200 response.
func OK(c echo.Context, feature entity.Feature, output any) error {
	return Filtered(c, http.StatusOK, feature, output)
}

// Created writes a filtered 201 response.
func Created(c echo.Context, feature entity.Feature, output any) error {
	return Filtered(c, http.StatusCreated, feature, output)
}

// NoStore marks the response as uncacheable.
func NoStore(c echo.Context) {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
}

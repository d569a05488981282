package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "bonsai/internal/delivery/context"
	domainerrors "bonsai/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind() == domainerrors.KindInternal {
			logger.Error("Internal error",
				slog.Any("error", err),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		m.write(c, domainerrors.NewErrorResponse(appErr))

		return
	}

	// Echo's own errors: unknown route, wrong method, oversized body.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.write(c, fromHTTPError(httpErr))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, domainerrors.NewErrorResponse(domainerrors.ErrInternal))
}

func (m *ErrorMiddleware) write(c echo.Context, body *domainerrors.ErrorResponse) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(body.StatusCode)
	} else {
		err = c.JSON(body.StatusCode, body)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func fromHTTPError(httpErr *echo.HTTPError) *domainerrors.ErrorResponse {
	var base *domainerrors.BaseError

	switch httpErr.Code {
	case http.StatusNotFound:
		base = domainerrors.ErrNotFound
	case http.StatusUnauthorized:
		base = domainerrors.ErrSessionInvalid
	case http.StatusForbidden:
		base = domainerrors.ErrForbidden
	default:
		if httpErr.Code >= http.StatusInternalServerError {
			base = domainerrors.ErrInternal
		} else {
			base = domainerrors.ErrValidationFailed
		}
	}

	body := domainerrors.NewErrorResponse(base)
	body.StatusCode = httpErr.Code
	if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
		body.Message = msg
	}

	return body
}

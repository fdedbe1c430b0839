// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"net/http"

	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into req and validates it. Malformed
// bodies are reported as validation failures.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(bindErrorDetail(err))
	}

	return c.Validate(req)
}

func bindErrorDetail(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "invalid request body"
}

// uuidParam parses the named path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": invalid UUID")
	}

	return id, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

package response

import (
	"net/http"

	deliverycontext "hobbyexplorer/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail    string `json:"detail"`            // Human-readable message
	Code      string `json:"code"`              // Machine-readable error code, e.g. "USER_NOT_FOUND"
	Errors    string `json:"errors,omitempty"`  // Field problems (4xx only)
	RequestID string `json:"request_id,omitempty"`
}

// OKResponse acknowledges a deletion.
type OKResponse struct {
	OK bool `json:"ok"`
}

// Success writes data as the bare response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes {"ok": true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, detail string, errors string) error {
	// Field problems are not echoed for server-side failures
	if statusCode >= http.StatusInternalServerError {
		errors = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Detail:    detail,
		Code:      errorCode,
		Errors:    errors,
		RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, detail string) error {
	return Error(c, http.StatusInternalServerError, errorCode, detail, "")
}

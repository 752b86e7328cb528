package http

import (
	"net/http"

	"loan-service/pkg/apperr"

	"github.com/labstack/echo/v4"
)

// writeError maps the error taxonomy to HTTP statuses. Anything outside the
// taxonomy is a 500 with a generic message; the cause stays in the logs.
func writeError(c echo.Context, err error) error {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	msg := "internal error"

	switch kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidInput:
		status = http.StatusBadRequest
	case apperr.KindInvalidState:
		status = http.StatusUnprocessableEntity
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnavailable:
		status = http.StatusServiceUnavailable
	}
	if kind != "" {
		msg = err.Error()
	}
	return c.JSON(status, ErrorResponse{Error: msg, Kind: string(kind)})
}

package http

import (
	"errors"
	"net/http"

	"propertyservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use case error onto an HTTP status and writes the
// error envelope. Validation failures become 400, missing objects 404,
// everything else is a 500 with a generic message so storage details never
// leak to clients.
func respondError(ctx echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, errorResponse(message))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrOwnerListingsNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

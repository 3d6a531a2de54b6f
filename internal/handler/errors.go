package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "healthshop/internal/errors"
)

// respondError converts a service error into the standard error envelope.
func respondError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: apperrors.ErrInvalidRequest.Error(),
		Code:  "INVALID_REQUEST",
	})
}

func invalidInput(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

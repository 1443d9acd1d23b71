package handler

import (
	"errors"
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

func writeData(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, map[string]interface{}{"data": payload})
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"message": message})
}

// writeError maps service errors onto the API's status-code taxonomy. The
// full error is only ever logged; clients of 5xx responses see a generic
// message.
func writeError(c echo.Context, err error) error {
	var notFound *service.NotFoundError
	var insufficientStock *service.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFound.Error()})
	case errors.As(err, &insufficientStock):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": insufficientStock.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateReview),
		errors.Is(err, service.ErrPaymentNotPending),
		errors.Is(err, service.ErrUnsupportedMethod),
		errors.Is(err, service.ErrInvalidSignature):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

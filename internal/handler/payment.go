package handler

import (
	"io"
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req dto.CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.paymentService.CreateIntent(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, resp)
}

func (h *PaymentHandler) ConfirmIntent(c echo.Context) error {
	var req dto.ConfirmPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.paymentService.ConfirmIntent(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, order)
}

// Webhook reads the raw body before any JSON parsing; the signature covers
// the exact bytes on the wire.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
	}

	sigHeader := c.Request().Header.Get("Stripe-Signature")
	if err := h.paymentService.HandleWebhook(c.Request().Context(), sigHeader, body); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

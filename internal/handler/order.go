package handler

import (
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderService.GetOrder(c.Request().Context(), middleware.UserID(c), c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, order)
}

package handler

import (
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartService.GetCart(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req dto.CartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.cartService.AddItem(c.Request().Context(), middleware.UserID(c), &req); err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusCreated, "item added to cart")
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity" validate:"required,gt=0"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.cartService.SetQuantity(c.Request().Context(), middleware.UserID(c), c.Param("productID"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusOK, "cart updated")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	err := h.cartService.RemoveItem(c.Request().Context(), middleware.UserID(c), c.Param("productID"))
	if err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusOK, "item removed from cart")
}

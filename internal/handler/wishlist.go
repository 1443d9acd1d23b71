package handler

import (
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	products, err := h.wishlistService.GetWishlist(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, products)
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req dto.WishlistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.wishlistService.AddItem(c.Request().Context(), middleware.UserID(c), req.ProductID); err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusCreated, "item added to wishlist")
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	err := h.wishlistService.RemoveItem(c.Request().Context(), middleware.UserID(c), c.Param("productID"))
	if err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusOK, "item removed from wishlist")
}

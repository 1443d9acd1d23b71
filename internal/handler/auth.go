package handler

import (
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	userService service.UserService
}

func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.userService.Register(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusCreated, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.userService.Login(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, result)
}

func (h *AuthHandler) Me(c echo.Context) error {
	info, err := h.userService.Me(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, info)
}

package handler

import (
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentService service.ContentService
	reviewService  service.ReviewService
}

func NewContentHandler(contentService service.ContentService, reviewService service.ReviewService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		reviewService:  reviewService,
	}
}

func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.contentService.ListPosts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, posts)
}

func (h *ContentHandler) GetPost(c echo.Context) error {
	post, err := h.contentService.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, post)
}

func (h *ContentHandler) SubmitContact(c echo.Context) error {
	var req dto.ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.contentService.SubmitContact(c.Request().Context(), &req); err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusCreated, "message received")
}

func (h *ContentHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewService.ListReviews(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, reviews)
}

func (h *ContentHandler) AddReview(c echo.Context) error {
	var req dto.ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewService.AddReview(c.Request().Context(), middleware.UserID(c), c.Param("slug"), &req)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusCreated, review)
}

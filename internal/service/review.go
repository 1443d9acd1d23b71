package service

import (
	"context"
	"fmt"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
)

type ReviewService interface {
	AddReview(ctx context.Context, userID, productSlug string, req *dto.ReviewRequest) (*model.Review, error)
	ListReviews(ctx context.Context, productSlug string) ([]*model.Review, error)
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
	catalog    CatalogService
}

func NewReviewService(reviewRepo repository.ReviewRepository, catalog CatalogService) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
		catalog:    catalog,
	}
}

func (s *reviewServiceImpl) AddReview(ctx context.Context, userID, productSlug string, req *dto.ReviewRequest) (*model.Review, error) {
	product, err := s.catalog.GetProductBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsForUser(ctx, product.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &model.Review{
		ProductID: product.ID,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Body:      req.Body,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("store review: %w", err)
	}

	return review, nil
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context, productSlug string) ([]*model.Review, error) {
	product, err := s.catalog.GetProductBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

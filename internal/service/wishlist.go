package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"gorm.io/gorm"
)

type WishlistService interface {
	AddItem(ctx context.Context, userID, productID string) error
	RemoveItem(ctx context.Context, userID, productID string) error
	GetWishlist(ctx context.Context, userID string) ([]*model.Product, error)
}

type wishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistServiceImpl{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *wishlistServiceImpl) AddItem(ctx context.Context, userID, productID string) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "product", ID: productID}
		}
		return fmt.Errorf("get product: %w", err)
	}
	if !product.Active {
		return &NotFoundError{Entity: "product", ID: productID}
	}

	return s.wishlistRepo.Add(ctx, &model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
}

func (s *wishlistServiceImpl) RemoveItem(ctx context.Context, userID, productID string) error {
	rows, err := s.wishlistRepo.Remove(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("remove wishlist item: %w", err)
	}
	if rows == 0 {
		return &NotFoundError{Entity: "wishlist item", ID: productID}
	}
	return nil
}

func (s *wishlistServiceImpl) GetWishlist(ctx context.Context, userID string) ([]*model.Product, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get wishlist products: %w", err)
	}
	return products, nil
}

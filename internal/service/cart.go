package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	AddItem(ctx context.Context, userID string, req *dto.CartItemRequest) error
	SetQuantity(ctx context.Context, userID, productID string, qty int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	GetCart(ctx context.Context, userID string) (*dto.CartResponse, error)
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID string, req *dto.CartItemRequest) error {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "product", ID: req.ProductID}
		}
		return fmt.Errorf("get product: %w", err)
	}
	if !product.Active {
		return &NotFoundError{Entity: "product", ID: req.ProductID}
	}

	return s.cartRepo.Add(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, userID, productID string, qty int) error {
	rows, err := s.cartRepo.SetQuantity(ctx, userID, productID, qty)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if rows == 0 {
		return &NotFoundError{Entity: "cart item", ID: productID}
	}
	return nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) error {
	rows, err := s.cartRepo.Remove(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if rows == 0 {
		return &NotFoundError{Entity: "cart item", ID: productID}
	}
	return nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get cart products: %w", err)
	}
	productByID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	resp := &dto.CartResponse{Items: make([]*dto.CartLine, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		product, ok := productByID[item.ProductID]
		if !ok {
			// product removed from the catalog since it was carted
			continue
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		resp.Items = append(resp.Items, &dto.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Slug:      product.Slug,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price.StringFixed(2),
			Currency:  product.Currency,
			Quantity:  item.Quantity,
			Subtotal:  subtotal.StringFixed(2),
		})
	}
	resp.Total = total.StringFixed(2)

	return resp, nil
}

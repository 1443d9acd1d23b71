package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/metrics"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*model.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	logger      *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		logger:      logger,
	}
}

// PlaceOrder validates every requested line against the live catalog, prices
// the order with snapshot unit prices, and persists order, items, stock
// decrements and the cart clear in a single transaction. The stock decrement
// is conditional at the storage layer, so two concurrent orders cannot both
// take the last unit.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*model.Order, error) {
	quantities := make(map[string]int, len(req.Items))
	productIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
		if _, seen := quantities[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get products for order: %w", err)
	}
	productByID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	for _, id := range productIDs {
		product, ok := productByID[id]
		if !ok || !product.Active {
			return nil, &NotFoundError{Entity: "product", ID: id}
		}
		if product.StockQuantity < quantities[id] {
			metrics.StockRejections.Inc()
			return nil, &InsufficientStockError{ProductID: id}
		}
	}

	total := decimal.Zero
	currency := "USD"
	orderID := uuid.NewString()
	orderItems := make([]*model.OrderItem, 0, len(productIDs))
	for _, id := range productIDs {
		product := productByID[id]
		qty := quantities[id]
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
		currency = product.Currency

		orderItems = append(orderItems, &model.OrderItem{
			OrderID:     orderID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    qty,
			UnitPrice:   product.Price,
			Currency:    product.Currency,
		})
	}

	shipping := req.ShippingAddress.ToModel()
	billing := shipping // billing defaults to a copy of shipping
	if req.BillingAddress != nil {
		billing = req.BillingAddress.ToModel()
	}

	order := &model.Order{
		ID:              orderID,
		UserID:          userID,
		TotalAmount:     total,
		Currency:        currency,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		PaymentStatus:   model.PaymentStatusPending,
		Status:          model.OrderStatusPending,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Notes:           req.Notes,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		for _, id := range productIDs {
			ok, err := s.productRepo.DecrementStock(ctx, tx, id, quantities[id])
			if err != nil {
				return fmt.Errorf("decrement stock for %s: %w", id, err)
			}
			if !ok {
				// a concurrent order took the stock after our check
				metrics.StockRejections.Inc()
				return &InsufficientStockError{ProductID: id}
			}
		}

		// the whole cart empties once any order is placed
		if err := s.cartRepo.ClearForUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.String("total", total.StringFixed(2)),
		zap.Int("lines", len(orderItems)))

	order.Items = nil
	for _, item := range orderItems {
		order.Items = append(order.Items, *item)
	}
	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: orderID}
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.UserID != userID {
		// hide other users' orders rather than confirming they exist
		return nil, &NotFoundError{Entity: "order", ID: orderID}
	}
	return order, nil
}

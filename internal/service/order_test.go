package service

import (
	"context"
	"testing"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) OrderService {
	return NewOrderService(
		db,
		repository.NewProductRepository(db),
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		zap.NewNop(),
	)
}

func TestPlaceOrder_SnapshotPricingAndStock(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedProduct(t, db, "p1", "p1-slug", "12.99", 10)

	// an unrelated carted product must also be cleared on success
	seedProduct(t, db, "p2", "p2-slug", "5.00", 3)
	require.NoError(t, db.Create(&model.CartItem{UserID: "u1", ProductID: "p1", Quantity: 3}).Error)
	require.NoError(t, db.Create(&model.CartItem{UserID: "u1", ProductID: "p2", Quantity: 1}).Error)

	svc := newOrderService(db)
	order, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "p1", Quantity: 3}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})
	require.NoError(t, err)

	assert.Equal(t, "38.97", order.TotalAmount.StringFixed(2))
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, 7, productStock(t, db, "p1"))

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "12.99", items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "p1", items[0].ProductID)

	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", "u1").Count(&cartCount).Error)
	assert.Zero(t, cartCount, "whole cart empties once an order is placed")
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedProduct(t, db, "p1", "p1-slug", "12.99", 2)

	svc := newOrderService(db)
	_, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "p1", Quantity: 3}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p1", stockErr.ProductID)
	assert.EqualError(t, err, "insufficient stock for product p1")

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	assert.Equal(t, 2, productStock(t, db, "p1"))
}

func TestPlaceOrder_ShortfallAbortsWholeBatch(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedProduct(t, db, "p1", "p1-slug", "12.99", 10)
	seedProduct(t, db, "p2", "p2-slug", "4.50", 1)

	svc := newOrderService(db)
	_, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items: []*dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 5},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p2", stockErr.ProductID)

	// first line must not have been persisted or decremented
	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
	assert.Equal(t, 10, productStock(t, db, "p1"))
	assert.Equal(t, 1, productStock(t, db, "p2"))
}

func TestPlaceOrder_ProductNotFound(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")

	svc := newOrderService(db)
	_, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "ghost", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.ID)
}

func TestPlaceOrder_InactiveProductRejected(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	product := seedProduct(t, db, "p1", "p1-slug", "12.99", 10)
	require.NoError(t, db.Model(product).Update("active", false).Error)

	svc := newOrderService(db)
	_, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPlaceOrder_MergesDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedProduct(t, db, "p1", "p1-slug", "10.00", 10)

	svc := newOrderService(db)
	order, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items: []*dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p1", Quantity: 3},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})
	require.NoError(t, err)

	assert.Equal(t, "50.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, 5, productStock(t, db, "p1"))

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestPlaceOrder_BillingDefaultsToShippingCopy(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedProduct(t, db, "p1", "p1-slug", "12.99", 10)

	svc := newOrderService(db)
	order, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "crypto",
	})
	require.NoError(t, err)

	var stored model.Order
	require.NoError(t, db.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, stored.ShippingAddress, stored.BillingAddress)
	assert.Equal(t, model.PaymentMethodCrypto, stored.PaymentMethod)
}

func TestPlaceOrder_DistinctBillingAddress(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedProduct(t, db, "p1", "p1-slug", "12.99", 10)

	billing := testAddress()
	billing.Line1 = "9 Invoice St"

	svc := newOrderService(db)
	order, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		BillingAddress:  billing,
		PaymentMethod:   "stripe",
	})
	require.NoError(t, err)

	var stored model.Order
	require.NoError(t, db.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "9 Invoice St", stored.BillingAddress.Line1)
	assert.Equal(t, "1 Harbor Way", stored.ShippingAddress.Line1)
}

func TestGetOrder_HidesOtherUsersOrders(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedProduct(t, db, "p1", "p1-slug", "12.99", 10)

	svc := newOrderService(db)
	order, err := svc.PlaceOrder(context.Background(), "u1", &dto.CreateOrderRequest{
		Items:           []*dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "stripe",
	})
	require.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), "u2", order.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	got, err := svc.GetOrder(context.Background(), "u1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, got.Items, 1)
}

package service

import (
	"fmt"
	"testing"

	"github.com/elicharlese/Dropics-sub001/internal/client"
	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
// The DSN is keyed on the test name so parallel tests stay isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := client.InitDatabase(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the shared in-memory db alive for the test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id, slug string, price string, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		ID:            id,
		Slug:          slug,
		Name:          "Product " + id,
		Price:         decimal.RequireFromString(price),
		Currency:      "USD",
		StockQuantity: stock,
		Active:        true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           id,
		Email:        id + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func testAddress() *dto.AddressPayload {
	return &dto.AddressPayload{
		FullName:   "Jamie Doe",
		Line1:      "1 Harbor Way",
		City:       "Oakland",
		State:      "CA",
		PostalCode: "94607",
		Country:    "US",
	}
}

func productStock(t *testing.T, db *gorm.DB, productID string) int {
	t.Helper()

	var product model.Product
	require.NoError(t, db.Where("id = ?", productID).First(&product).Error)
	return product.StockQuantity
}

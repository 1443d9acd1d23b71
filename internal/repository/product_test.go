package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/elicharlese/Dropics-sub001/internal/client"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := client.InitDatabase(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestDecrementStock_Conditional(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Product{
		ID:            "p1",
		Slug:          "p1",
		Name:          "P1",
		Price:         decimal.RequireFromString("9.99"),
		Currency:      "USD",
		StockQuantity: 3,
		Active:        true,
	}).Error)

	repo := NewProductRepository(db)
	ctx := context.Background()

	// exact remaining stock is allowed
	ok, err := repo.DecrementStock(ctx, db, "p1", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	var product model.Product
	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.Equal(t, 0, product.StockQuantity)

	// nothing left: the condition fails and the row is untouched
	ok, err = repo.DecrementStock(ctx, db, "p1", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.Equal(t, 0, product.StockQuantity)

	// unknown product behaves like a failed condition
	ok, err = repo.DecrementStock(ctx, db, "ghost", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIncrementStock(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Product{
		ID:            "p1",
		Slug:          "p1",
		Name:          "P1",
		Price:         decimal.RequireFromString("9.99"),
		Currency:      "USD",
		StockQuantity: 1,
		Active:        true,
	}).Error)

	repo := NewProductRepository(db)
	require.NoError(t, repo.IncrementStock(context.Background(), db, "p1", 4))

	var product model.Product
	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.Equal(t, 5, product.StockQuantity)
}

package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/elicharlese/Dropics-sub001/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDatabase opens the backing store and migrates the schema. sqlite URLs
// (file: DSNs, :memory:, *.db paths) are used by tests and local development;
// anything else is treated as a mysql DSN.
func InitDatabase(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isSqliteURL(databaseURL) {
		dialector = sqlite.Open(databaseURL)
	} else {
		dialector = mysql.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db handle: %w", err)
	}

	// Connection pool (important for webhooks)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Review{},
		&model.BlogPost{},
		&model.ContactMessage{},
		&model.WebhookEvent{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func isSqliteURL(url string) bool {
	return url == ":memory:" ||
		strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db")
}

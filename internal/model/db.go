package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodCrypto PaymentMethod = "crypto"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Name         string `gorm:"size:128"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Product struct {
	ID            string          `gorm:"primaryKey;size:64;not null"` // product sku
	Slug          string          `gorm:"size:128;uniqueIndex;not null"`
	Name          string          `gorm:"size:255;not null"`
	Description   string          `gorm:"type:text"`
	Category      string          `gorm:"size:64;index"`
	ImageURL      string          `gorm:"size:512"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency      string          `gorm:"size:8;not null"`
	StockQuantity int             `gorm:"not null"` // available-to-sell counter, never negative
	Active        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Address is snapshotted onto orders by value at creation time; it never
// references a live address record.
type Address struct {
	FullName   string `gorm:"size:128" json:"full_name"`
	Line1      string `gorm:"size:255" json:"line1"`
	Line2      string `gorm:"size:255" json:"line2,omitempty"`
	City       string `gorm:"size:128" json:"city"`
	State      string `gorm:"size:128" json:"state,omitempty"`
	PostalCode string `gorm:"size:32" json:"postal_code"`
	Country    string `gorm:"size:64" json:"country"`
	Phone      string `gorm:"size:32" json:"phone,omitempty"`
}

type Order struct {
	ID              string          `gorm:"primaryKey;size:36;not null"`
	UserID          string          `gorm:"size:36;index;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency        string          `gorm:"size:8;not null"`
	PaymentMethod   PaymentMethod   `gorm:"size:16;not null"`
	PaymentStatus   PaymentStatus   `gorm:"size:16;index;not null"`
	Status          OrderStatus     `gorm:"size:16;index;not null"`
	PaymentIntentID string          `gorm:"size:64;index"`
	ShippingAddress Address         `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  Address         `gorm:"embedded;embeddedPrefix:billing_"`
	TrackingNumber  string          `gorm:"size:64"`
	Notes           string          `gorm:"type:text"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → orders.id
	OrderID string `gorm:"size:36;index;not null"`
	// FK → products.id
	ProductID   string `gorm:"size:64;index;not null"`
	ProductName string `gorm:"size:255;not null"` // name snapshot for display
	Quantity    int    `gorm:"not null"`
	// unit price at time of purchase, immutable once written
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency  string          `gorm:"size:8;not null"`
	CreatedAt time.Time
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:36;uniqueIndex:idx_cart_user_product;not null"`
	ProductID string `gorm:"size:64;uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WishlistItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:36;uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID string `gorm:"size:64;uniqueIndex:idx_wishlist_user_product;not null"`
	CreatedAt time.Time
}

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID string `gorm:"size:64;uniqueIndex:idx_review_product_user;not null"`
	UserID    string `gorm:"size:36;uniqueIndex:idx_review_product_user;not null"`
	Rating    int    `gorm:"not null"` // 1..5
	Title     string `gorm:"size:255"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BlogPost struct {
	ID          uint       `gorm:"primaryKey"`
	Slug        string     `gorm:"size:128;uniqueIndex;not null"`
	Title       string     `gorm:"size:255;not null"`
	Excerpt     string     `gorm:"size:512"`
	Body        string     `gorm:"type:text"`
	Author      string     `gorm:"size:128"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:128;not null"`
	Email     string `gorm:"size:255;not null"`
	Subject   string `gorm:"size:255"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// WebhookEvent records processed provider event ids so redelivered events
// are treated as no-ops.
type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

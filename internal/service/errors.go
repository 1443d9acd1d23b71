package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("not allowed")
	ErrPaymentNotPending  = errors.New("order payment is not pending")
	ErrUnsupportedMethod  = errors.New("payment method not supported for this operation")
	ErrDuplicateReview    = errors.New("product already reviewed")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
)

// NotFoundError reports an absent (or inactive) entity by name, per entity
// rather than per batch.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}

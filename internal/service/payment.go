package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elicharlese/Dropics-sub001/internal/client"
	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/metrics"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, userID string, req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error)
	ConfirmIntent(ctx context.Context, userID string, req *dto.ConfirmPaymentRequest) (*model.Order, error)
	HandleWebhook(ctx context.Context, sigHeader string, body []byte) error
}

type paymentServiceImpl struct {
	db               *gorm.DB
	stripeClient     client.StripeClient
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	webhookEventRepo repository.WebhookEventRepository
	serviceBaseURL   string
	logger           *zap.Logger
}

func NewPaymentService(
	db *gorm.DB,
	stripeClient client.StripeClient,
	serviceBaseURL string,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	webhookEventRepo repository.WebhookEventRepository,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		db:               db,
		stripeClient:     stripeClient,
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		webhookEventRepo: webhookEventRepo,
		serviceBaseURL:   serviceBaseURL,
		logger:           logger,
	}
}

func (s *paymentServiceImpl) CreateIntent(ctx context.Context, userID string, req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: req.OrderID}
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if order.PaymentMethod != model.PaymentMethodStripe {
		return nil, ErrUnsupportedMethod
	}
	if order.PaymentStatus != model.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = s.serviceBaseURL + "/checkout/complete"
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, &client.CreateIntentRequest{
		Amount:    minorUnits(order.TotalAmount),
		Currency:  order.Currency,
		OrderID:   order.ID,
		UserID:    order.UserID,
		ReturnURL: returnURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	if err := s.orderRepo.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, fmt.Errorf("store payment intent id: %w", err)
	}

	return &dto.CreatePaymentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// ConfirmIntent is the synchronous counterpart of the webhook: the buyer's
// browser reports back after the payment form, we re-fetch the intent from
// the provider and apply the same transition. Unlike the webhook path this
// one checks the intent's user metadata against the caller, since it is
// authenticated by caller identity rather than by signature.
func (s *paymentServiceImpl) ConfirmIntent(ctx context.Context, userID string, req *dto.ConfirmPaymentRequest) (*model.Order, error) {
	intent, err := s.stripeClient.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}

	if intent.Metadata["user_id"] != userID {
		return nil, ErrForbidden
	}
	orderID := intent.Metadata["order_id"]
	if orderID == "" {
		return nil, &NotFoundError{Entity: "order", ID: "for intent " + req.PaymentIntentID}
	}

	// trust the provider-reported status over the client's claim
	switch intent.Status {
	case "succeeded":
		if err := s.applySuccess(ctx, orderID); err != nil {
			return nil, err
		}
	case "canceled", "requires_payment_method":
		if err := s.applyFailure(ctx, orderID); err != nil {
			return nil, err
		}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}
	return order, nil
}

// HandleWebhook authenticates a provider event against the shared signing
// secret and drives the order state machine. Events carry globally unique
// ids; an id we have already processed is a no-op, so redelivery is safe.
func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, sigHeader string, body []byte) error {
	if err := s.stripeClient.VerifyWebhookSignature(body, sigHeader); err != nil {
		s.logger.Warn("webhook signature rejected", zap.Error(err))
		return ErrInvalidSignature
	}

	var event client.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	seen, err := s.webhookEventRepo.Exists(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("check webhook event: %w", err)
	}
	if seen {
		s.logger.Info("duplicate webhook event ignored", zap.String("event_id", event.ID))
		metrics.WebhookEvents.WithLabelValues(event.Type, "duplicate").Inc()
		return nil
	}

	orderID := event.Data.Object.Metadata["order_id"]

	switch event.Type {
	case client.EventPaymentSucceeded, client.EventPaymentFailed:
		if orderID == "" {
			// nothing to correlate against; discard, no retry
			s.logger.Warn("webhook event without order id discarded",
				zap.String("event_id", event.ID),
				zap.String("event_type", event.Type))
			metrics.WebhookEvents.WithLabelValues(event.Type, "discarded").Inc()
			return nil
		}
	default:
		return nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if event.Type == client.EventPaymentSucceeded {
			if err := s.markPaid(ctx, tx, orderID); err != nil {
				return err
			}
		} else {
			if err := s.markFailed(ctx, tx, orderID); err != nil {
				return err
			}
		}
		return s.webhookEventRepo.MarkProcessed(ctx, tx, event.ID, event.Type)
	})
	if err != nil {
		metrics.WebhookEvents.WithLabelValues(event.Type, "error").Inc()
		return err
	}

	metrics.WebhookEvents.WithLabelValues(event.Type, "processed").Inc()
	return nil
}

func (s *paymentServiceImpl) applySuccess(ctx context.Context, orderID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.markPaid(ctx, tx, orderID)
	})
}

func (s *paymentServiceImpl) applyFailure(ctx context.Context, orderID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.markFailed(ctx, tx, orderID)
	})
}

func (s *paymentServiceImpl) markPaid(ctx context.Context, tx *gorm.DB, orderID string) error {
	rows, err := s.orderRepo.MarkPaid(ctx, tx, orderID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if rows == 0 {
		// absent or already in a terminal payment state; don't re-enter
		s.logger.Info("payment success skipped, order not pending",
			zap.String("order_id", orderID))
		return nil
	}

	s.logger.Info("order paid", zap.String("order_id", orderID))
	return nil
}

// markFailed cancels the order and returns its reserved stock, reversing the
// decrement made at placement. The stock increments happen in the same
// transaction as the status change so a crash cannot release stock twice.
func (s *paymentServiceImpl) markFailed(ctx context.Context, tx *gorm.DB, orderID string) error {
	rows, err := s.orderRepo.MarkFailed(ctx, tx, orderID)
	if err != nil {
		return fmt.Errorf("mark order failed: %w", err)
	}
	if rows == 0 {
		s.logger.Info("payment failure skipped, order not pending",
			zap.String("order_id", orderID))
		return nil
	}

	items, err := s.orderRepo.GetOrderItems(ctx, tx, orderID)
	if err != nil {
		return fmt.Errorf("get order items: %w", err)
	}
	for _, item := range items {
		if err := s.productRepo.IncrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("restore stock for %s: %w", item.ProductID, err)
		}
	}

	s.logger.Info("order cancelled after payment failure",
		zap.String("order_id", orderID),
		zap.Int("lines_restored", len(items)))
	return nil
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

package mocks

import (
	"context"

	"github.com/elicharlese/Dropics-sub001/internal/client"
	"github.com/stretchr/testify/mock"
)

type MockStripeClient struct {
	mock.Mock
}

func (m *MockStripeClient) CreatePaymentIntent(ctx context.Context, req *client.CreateIntentRequest) (*client.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.PaymentIntent), args.Error(1)
}

func (m *MockStripeClient) GetPaymentIntent(ctx context.Context, intentID string) (*client.PaymentIntent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.PaymentIntent), args.Error(1)
}

func (m *MockStripeClient) VerifyWebhookSignature(payload []byte, sigHeader string) error {
	args := m.Called(payload, sigHeader)
	return args.Error(0)
}

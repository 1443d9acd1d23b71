package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/elicharlese/Dropics-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *stripeClientImpl {
	return &stripeClientImpl{
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		baseApiURL:    baseURL,
		secretKey:     "sk_test_123",
		webhookSecret: "whsec_test",
		now:           time.Now,
	}
}

func signedHeader(secret string, ts time.Time, payload []byte) string {
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	return "t=" + timestamp + ",v1=" + ComputeWebhookSignature(secret, timestamp, payload)
}

func TestVerifyWebhookSignature(t *testing.T) {
	c := testClient("")
	payload := []byte(`{"id":"evt_1"}`)

	t.Run("valid", func(t *testing.T) {
		header := signedHeader("whsec_test", time.Now(), payload)
		assert.NoError(t, c.VerifyWebhookSignature(payload, header))
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := signedHeader("whsec_other", time.Now(), payload)
		assert.Error(t, c.VerifyWebhookSignature(payload, header))
	})

	t.Run("tampered payload", func(t *testing.T) {
		header := signedHeader("whsec_test", time.Now(), payload)
		assert.Error(t, c.VerifyWebhookSignature([]byte(`{"id":"evt_2"}`), header))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		header := signedHeader("whsec_test", time.Now().Add(-10*time.Minute), payload)
		assert.Error(t, c.VerifyWebhookSignature(payload, header))
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Error(t, c.VerifyWebhookSignature(payload, "garbage"))
		assert.Error(t, c.VerifyWebhookSignature(payload, ""))
	})

	t.Run("second v1 entry matches", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		good := ComputeWebhookSignature("whsec_test", timestamp, payload)
		header := "t=" + timestamp + ",v1=deadbeef,v1=" + good
		assert.NoError(t, c.VerifyWebhookSignature(payload, header))
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3897", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "ord_1", r.PostForm.Get("metadata[order_id]"))
		assert.Equal(t, "u1", r.PostForm.Get("metadata[user_id]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method","metadata":{"order_id":"ord_1","user_id":"u1"}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	intent, err := c.CreatePaymentIntent(context.Background(), &CreateIntentRequest{
		Amount:   3897,
		Currency: "USD",
		OrderID:  "ord_1",
		UserID:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	assert.Equal(t, "ord_1", intent.Metadata["order_id"])
}

func TestCreatePaymentIntent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.CreatePaymentIntent(context.Background(), &CreateIntentRequest{Amount: 100, Currency: "USD"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestGetPaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents/pi_1", r.URL.Path)
		w.Write([]byte(`{"id":"pi_1","status":"succeeded","metadata":{"order_id":"ord_1"}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	intent, err := c.GetPaymentIntent(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
}

func TestNewStripeClientDefaults(t *testing.T) {
	c := NewStripeClient(&config.Stripe{
		BaseApiURL:    "https://api.stripe.com",
		SecretKey:     "sk",
		WebhookSecret: "whsec",
	})
	require.NotNil(t, c)
}

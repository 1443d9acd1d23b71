package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Orders successfully placed.",
	})

	StockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_stock_rejections_total",
		Help: "Order attempts rejected for insufficient stock.",
	})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_payment_webhook_events_total",
		Help: "Payment provider webhook events by type and outcome.",
	}, []string{"event_type", "outcome"})
)

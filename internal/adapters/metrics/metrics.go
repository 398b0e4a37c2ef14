// internal/adapters/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

var (
	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "geocoder",
		Name:      "requests_total",
		Help:      "Geocode lookups by outcome (ok, not_found, unavailable, cache_hit).",
	}, []string{"outcome"})

	GeocodeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "geocoder",
		Name:      "request_duration_seconds",
		Help:      "Latency of upstream geocode requests.",
		Buckets:   prometheus.DefBuckets,
	})

	DeliveryQuotes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "delivery",
		Name:      "quotes_total",
		Help:      "Delivery method selections by method and settled state.",
	}, []string{"method", "state"})

	OrderSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "submissions_total",
		Help:      "Order-creation calls by result (created, rejected, failed).",
	}, []string{"result"})

	PaymentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payments",
		Name:      "requests_total",
		Help:      "Payment initiations by provider and result.",
	}, []string{"provider", "result"})

	PaymentCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payments",
		Name:      "callbacks_total",
		Help:      "Payment gateway callbacks by provider and status.",
	}, []string{"provider", "status"})
)

// internal/adapters/httpapi/router.go
package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/adapters/payment"
	"github.com/jncrafts/storefront/internal/application"
	"github.com/jncrafts/storefront/internal/domain"
)

const paystackSignatureHeader = "x-paystack-signature"

// maxCallbackBytes bounds gateway callback bodies.
const maxCallbackBytes = 1 << 20

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type WebhookParser interface {
	ParseWebhook(body []byte, signature string) (domain.PaymentResult, error)
}

// Handler serves the side endpoints the gRPC service cannot: health, metrics
// and the payment gateways' callbacks.
type Handler struct {
	payments *application.PaymentService
	paystack WebhookParser
	checks   map[string]HealthCheck
	log      zerolog.Logger
}

func NewHandler(payments *application.PaymentService, paystack WebhookParser, checks map[string]HealthCheck, log zerolog.Logger) *Handler {
	return &Handler{payments: payments, paystack: paystack, checks: checks, log: log}
}

func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.log))

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	payments := router.Group("/payments")
	payments.POST("/mpesa/callback", h.MpesaCallback)
	payments.POST("/paystack/webhook", h.PaystackWebhook)
	return router
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	result := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.log.Warn().Err(err).Str("dependency", name).Msg("health check failed")
			result[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "ok"
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": result})
}

// MpesaCallback receives the STK push result from Daraja. Daraja only reads
// the ResultCode of the acknowledgement.
func (h *Handler) MpesaCallback(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ResultCode": 1, "ResultDesc": "Unreadable body"})
		return
	}
	result, err := payment.ParseMpesaCallback(body)
	if err != nil {
		h.log.Warn().Err(err).Msg("rejected mpesa callback")
		metrics.PaymentCallbacks.WithLabelValues(string(domain.ProviderMpesa), "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"ResultCode": 1, "ResultDesc": "Rejected"})
		return
	}
	if err := h.complete(c.Request.Context(), result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ResultCode": 1, "ResultDesc": "Rejected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

func (h *Handler) PaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable body"})
		return
	}
	result, err := h.paystack.ParseWebhook(body, c.GetHeader(paystackSignatureHeader))
	switch {
	case errors.Is(err, payment.ErrInvalidSignature):
		h.log.Warn().Str("remote", c.ClientIP()).Msg("paystack webhook with invalid signature")
		metrics.PaymentCallbacks.WithLabelValues(string(domain.ProviderPaystack), "invalid").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid signature"})
		return
	case errors.Is(err, payment.ErrIgnoredEvent):
		h.log.Debug().Err(err).Msg("ignoring paystack event")
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	case err != nil:
		metrics.PaymentCallbacks.WithLabelValues(string(domain.ProviderPaystack), "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.complete(c.Request.Context(), result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not record payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *Handler) complete(ctx context.Context, result domain.PaymentResult) error {
	status := domain.PaymentStatusFailed
	if result.Paid {
		status = domain.PaymentStatusPaid
	}
	if err := h.payments.Complete(ctx, result); err != nil {
		h.log.Error().
			Err(err).
			Str("provider", string(result.Provider)).
			Str("reference", result.Reference).
			Msg("failed to record payment result")
		metrics.PaymentCallbacks.WithLabelValues(string(result.Provider), "error").Inc()
		return err
	}
	metrics.PaymentCallbacks.WithLabelValues(string(result.Provider), status).Inc()
	return nil
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.Request.URL.Path == "/metrics" {
			return
		}
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

// internal/adapters/ordergateway/client.go
package ordergateway

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/adapters/httpclient"
	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/domain"
)

// Client submits assembled orders to the storefront's order-creation endpoint.
type Client struct {
	url     string
	apiKey  string
	timeout time.Duration
	http    *httpclient.Client
	log     zerolog.Logger
}

func NewClient(cfg config.OrderGatewayConfig, hc *httpclient.Client, log zerolog.Logger) *Client {
	return &Client{
		url:     strings.TrimSpace(cfg.URL),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		http:    hc,
		log:     log,
	}
}

type createOrderResponse struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber"`
	Message     string `json:"message,omitempty"`
}

// CreateOrder posts the request once. Every failure is a *domain.SubmissionError.
func (c *Client) CreateOrder(ctx context.Context, req *domain.OrderRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())
	if c.apiKey != "" {
		header.Set("Authorization", "Bearer "+c.apiKey)
	}

	var resp createOrderResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, c.url, header, req, &resp); err != nil {
		metrics.OrderSubmissions.WithLabelValues("failed").Inc()
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return "", &domain.SubmissionError{
				StatusCode: statusErr.StatusCode,
				Retryable:  true,
				Err:        errors.Wrap(statusErr, "create order"),
			}
		}
		return "", &domain.SubmissionError{Retryable: true, Err: errors.Wrap(err, "create order")}
	}

	if !resp.Success || resp.OrderNumber == "" {
		metrics.OrderSubmissions.WithLabelValues("rejected").Inc()
		msg := resp.Message
		if msg == "" {
			msg = "order was not created"
		}
		return "", &domain.SubmissionError{StatusCode: http.StatusOK, Retryable: true, Err: errors.New(msg)}
	}

	metrics.OrderSubmissions.WithLabelValues("created").Inc()
	c.log.Debug().Str("order_number", resp.OrderNumber).Msg("order accepted upstream")
	return resp.OrderNumber, nil
}

// internal/adapters/payment/paystack.go
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/adapters/httpclient"
	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/domain"
)

var (
	ErrInvalidSignature = errors.New("invalid paystack signature")
	// ErrIgnoredEvent marks webhook events that carry no payment outcome.
	ErrIgnoredEvent = errors.New("ignored paystack event")
)

// PaystackClient starts card and mobile-money payments on Paystack's hosted
// checkout page.
type PaystackClient struct {
	cfg  config.PaystackConfig
	http *httpclient.Client
	log  zerolog.Logger
}

func NewPaystackClient(cfg config.PaystackConfig, hc *httpclient.Client, log zerolog.Logger) *PaystackClient {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &PaystackClient{cfg: cfg, http: hc, log: log}
}

func (c *PaystackClient) Provider() domain.PaymentProvider { return domain.ProviderPaystack }

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Initiate creates a transaction and returns the hosted checkout URL. Amounts
// are sent in the currency's minor unit.
func (c *PaystackClient) Initiate(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error) {
	if strings.TrimSpace(req.Email) == "" {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderPaystack), "invalid").Inc()
		return nil, errors.New("paystack requires a customer email")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", req.Amount)
	}

	body := initializeRequest{
		Email:       req.Email,
		Amount:      int64(math.Round(req.Amount * 100)),
		Currency:    "KES",
		Reference:   req.Reference,
		CallbackURL: c.cfg.CallbackURL,
		Metadata:    map[string]string{"order_number": req.OrderNumber},
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	var resp initializeResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/transaction/initialize", header, body, &resp); err != nil {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderPaystack), "failed").Inc()
		return nil, errors.Wrap(err, "paystack initialize")
	}
	if !resp.Status || resp.Data.AuthorizationURL == "" {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderPaystack), "rejected").Inc()
		return nil, fmt.Errorf("paystack initialize rejected: %s", resp.Message)
	}

	reference := resp.Data.Reference
	if reference == "" {
		reference = req.Reference
	}
	metrics.PaymentRequests.WithLabelValues(string(domain.ProviderPaystack), "sent").Inc()
	return &domain.PaymentSession{
		Provider:    domain.ProviderPaystack,
		Reference:   reference,
		CheckoutURL: resp.Data.AuthorizationURL,
	}, nil
}

// Sign is the x-paystack-signature value for body.
func (c *PaystackClient) Sign(body []byte) string {
	mac := hmac.New(sha512.New, []byte(c.cfg.SecretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		ID              int64  `json:"id"`
		Reference       string `json:"reference"`
		Status          string `json:"status"`
		GatewayResponse string `json:"gateway_response"`
	} `json:"data"`
}

// ParseWebhook verifies the signature and extracts the payment outcome.
// Events other than charge results return ErrIgnoredEvent.
func (c *PaystackClient) ParseWebhook(body []byte, signature string) (domain.PaymentResult, error) {
	expected := c.Sign(body)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature)))) {
		return domain.PaymentResult{}, ErrInvalidSignature
	}

	var evt webhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return domain.PaymentResult{}, errors.Wrap(err, "decode paystack webhook")
	}
	switch evt.Event {
	case "charge.success":
		return domain.PaymentResult{
			Provider:  domain.ProviderPaystack,
			Reference: evt.Data.Reference,
			Paid:      true,
			Receipt:   fmt.Sprint(evt.Data.ID),
		}, nil
	case "charge.failed":
		return domain.PaymentResult{
			Provider:  domain.ProviderPaystack,
			Reference: evt.Data.Reference,
			Reason:    evt.Data.GatewayResponse,
		}, nil
	}
	return domain.PaymentResult{}, errors.Wrap(ErrIgnoredEvent, evt.Event)
}

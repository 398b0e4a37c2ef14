// internal/adapters/payment/mpesa.go
package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/adapters/httpclient"
	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/domain"
)

// Daraja expects timestamps in East Africa Time.
var nairobi = time.FixedZone("EAT", 3*60*60)

// MpesaClient starts Lipa na M-Pesa Online (STK push) payments through Daraja.
type MpesaClient struct {
	cfg  config.MpesaConfig
	http *httpclient.Client
	log  zerolog.Logger
	now  func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewMpesaClient(cfg config.MpesaConfig, hc *httpclient.Client, log zerolog.Logger) *MpesaClient {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &MpesaClient{cfg: cfg, http: hc, log: log, now: time.Now}
}

func (c *MpesaClient) Provider() domain.PaymentProvider { return domain.ProviderMpesa }

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// Initiate sends an STK push to the customer's phone. The session reference is
// Daraja's CheckoutRequestID, which is what the callback reports back.
func (c *MpesaClient) Initiate(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error) {
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderMpesa), "invalid").Inc()
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", req.Amount)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderMpesa), "failed").Inc()
		return nil, err
	}

	timestamp := c.now().In(nairobi).Format("20060102150405")
	body := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          Password(c.cfg.ShortCode, c.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            int64(math.Ceil(req.Amount)),
		PartyA:            phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.OrderNumber,
		TransactionDesc:   "Order " + req.OrderNumber,
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var resp stkPushResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/mpesa/stkpush/v1/processrequest", header, body, &resp); err != nil {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderMpesa), "failed").Inc()
		return nil, errors.Wrap(err, "mpesa stk push")
	}
	if resp.ResponseCode != "0" {
		metrics.PaymentRequests.WithLabelValues(string(domain.ProviderMpesa), "rejected").Inc()
		return nil, fmt.Errorf("mpesa stk push rejected: %s (code %s)", resp.ResponseDescription, resp.ResponseCode)
	}

	metrics.PaymentRequests.WithLabelValues(string(domain.ProviderMpesa), "sent").Inc()
	return &domain.PaymentSession{
		Provider:        domain.ProviderMpesa,
		Reference:       resp.CheckoutRequestID,
		CustomerMessage: resp.CustomerMessage,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func (c *MpesaClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.expires) {
		return c.token, nil
	}

	header := http.Header{}
	creds := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	header.Set("Authorization", "Basic "+creds)

	var resp tokenResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, c.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", header, nil, &resp); err != nil {
		return "", errors.Wrap(err, "mpesa oauth")
	}
	if resp.AccessToken == "" {
		return "", errors.New("mpesa oauth: empty access token")
	}
	ttl, err := strconv.Atoi(resp.ExpiresIn)
	if err != nil || ttl <= 0 {
		ttl = 3599
	}
	c.token = resp.AccessToken
	// Refresh a minute early so a token never expires mid-request.
	c.expires = c.now().Add(time.Duration(ttl)*time.Second - time.Minute)
	return c.token, nil
}

// Password is the STK push password: base64(shortcode + passkey + timestamp).
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// NormalizePhone turns a Kenyan mobile number into the 2547XXXXXXXX / 2541XXXXXXXX
// form Daraja accepts.
func NormalizePhone(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == '+' || r == ' ' || r == '-' {
			return -1
		}
		return 'x'
	}, phone)

	switch {
	case len(digits) == 10 && strings.HasPrefix(digits, "0"):
		digits = "254" + digits[1:]
	case len(digits) == 9:
		digits = "254" + digits
	}
	if len(digits) != 12 || !strings.HasPrefix(digits, "254") || (digits[3] != '7' && digits[3] != '1') || strings.ContainsRune(digits, 'x') {
		return "", fmt.Errorf("invalid M-Pesa phone number %q", phone)
	}
	return digits, nil
}

type mpesaCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// ParseMpesaCallback reads the STK push result Daraja posts to the callback URL.
func ParseMpesaCallback(body []byte) (domain.PaymentResult, error) {
	var cb mpesaCallback
	if err := json.Unmarshal(body, &cb); err != nil {
		return domain.PaymentResult{}, errors.Wrap(err, "decode mpesa callback")
	}
	stk := cb.Body.StkCallback
	if stk.CheckoutRequestID == "" {
		return domain.PaymentResult{}, errors.New("mpesa callback without CheckoutRequestID")
	}
	result := domain.PaymentResult{
		Provider:  domain.ProviderMpesa,
		Reference: stk.CheckoutRequestID,
		Paid:      stk.ResultCode == 0,
	}
	if !result.Paid {
		result.Reason = stk.ResultDesc
		return result, nil
	}
	for _, item := range stk.CallbackMetadata.Item {
		if item.Name == "MpesaReceiptNumber" {
			result.Receipt = fmt.Sprint(item.Value)
		}
	}
	return result, nil
}

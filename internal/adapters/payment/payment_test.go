// internal/adapters/payment/payment_test.go
package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jncrafts/storefront/internal/adapters/httpclient"
	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/domain"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0712345678", "254712345678", false},
		{"+254 712 345 678", "254712345678", false},
		{"254712345678", "254712345678", false},
		{"712345678", "254712345678", false},
		{"0110-123-456", "254110123456", false},
		{"0812345678", "", true},
		{"071234567", "", true},
		{"07123456789", "", true},
		{"07l2345678", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizePhone(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "NormalizePhone(%q)", tt.in)
			continue
		}
		assert.NoError(t, err, "NormalizePhone(%q)", tt.in)
		assert.Equal(t, tt.want, got, "NormalizePhone(%q)", tt.in)
	}
}

func TestPassword(t *testing.T) {
	got := Password("174379", "passkey", "20240101120000")
	raw, err := base64.StdEncoding.DecodeString(got)
	require.NoError(t, err)
	assert.Equal(t, "174379passkey20240101120000", string(raw))
}

func TestMpesaClient_Initiate(t *testing.T) {
	var tokenCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			atomic.AddInt32(&tokenCalls, 1)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
			_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":"3599"}`))
		case "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			var body stkPushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "174379", body.BusinessShortCode)
			assert.Equal(t, "20240301090000", body.Timestamp)
			assert.Equal(t, Password("174379", "pk", "20240301090000"), body.Password)
			assert.Equal(t, int64(2601), body.Amount, "rounded up to whole shillings")
			assert.Equal(t, "254712345678", body.PartyA)
			assert.Equal(t, "254712345678", body.PhoneNumber)
			assert.Equal(t, "JN-1001", body.AccountReference)
			assert.Equal(t, "https://shop.example/payments/mpesa/callback", body.CallBackURL)
			_, _ = w.Write([]byte(`{"MerchantRequestID":"29115","CheckoutRequestID":"ws_CO_123","ResponseCode":"0","ResponseDescription":"Success. Request accepted for processing","CustomerMessage":"Success. Request accepted for processing"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewMpesaClient(config.MpesaConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "pk",
		CallbackURL:    "https://shop.example/payments/mpesa/callback",
	}, httpclient.NewClient(nil, time.Second), zerolog.Nop())
	client.now = func() time.Time { return time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC) }
	assert.Equal(t, domain.ProviderMpesa, client.Provider())

	req := domain.PaymentRequest{OrderNumber: "JN-1001", Amount: 2600.4, Phone: "0712 345 678"}
	for i := 0; i < 2; i++ {
		session, err := client.Initiate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "ws_CO_123", session.Reference)
		assert.NotEmpty(t, session.CustomerMessage)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls), "token is reused until it expires")
}

func TestMpesaClient_InitiateFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":"3599"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ResponseCode":"1","ResponseDescription":"Invalid Access Token"}`))
	}))
	defer srv.Close()
	client := NewMpesaClient(config.MpesaConfig{BaseURL: srv.URL, ShortCode: "174379"}, httpclient.NewClient(nil, time.Second), zerolog.Nop())

	_, err := client.Initiate(context.Background(), domain.PaymentRequest{OrderNumber: "JN-1", Amount: 100, Phone: "0712345678"})
	assert.ErrorContains(t, err, "Invalid Access Token")

	_, err = client.Initiate(context.Background(), domain.PaymentRequest{OrderNumber: "JN-1", Amount: 100, Phone: "12345"})
	assert.ErrorContains(t, err, "invalid M-Pesa phone number")

	_, err = client.Initiate(context.Background(), domain.PaymentRequest{OrderNumber: "JN-1", Amount: 0, Phone: "0712345678"})
	assert.Error(t, err)
}

func TestParseMpesaCallback(t *testing.T) {
	paid := []byte(`{"Body":{"stkCallback":{"MerchantRequestID":"29115","CheckoutRequestID":"ws_CO_123","ResultCode":0,"ResultDesc":"The service request is processed successfully.","CallbackMetadata":{"Item":[{"Name":"Amount","Value":2601},{"Name":"MpesaReceiptNumber","Value":"NLJ7RT61SV"},{"Name":"PhoneNumber","Value":254712345678}]}}}}`)
	result, err := ParseMpesaCallback(paid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_123", Paid: true, Receipt: "NLJ7RT61SV"}, result)

	cancelled := []byte(`{"Body":{"stkCallback":{"MerchantRequestID":"29115","CheckoutRequestID":"ws_CO_123","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`)
	result, err = ParseMpesaCallback(cancelled)
	require.NoError(t, err)
	assert.False(t, result.Paid)
	assert.Equal(t, "Request cancelled by user", result.Reason)

	_, err = ParseMpesaCallback([]byte(`{"Body":{}}`))
	assert.Error(t, err)
	_, err = ParseMpesaCallback([]byte(`not json`))
	assert.Error(t, err)
}

func TestPaystackClient_Initiate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		var body initializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "achieng@example.com", body.Email)
		assert.Equal(t, int64(260050), body.Amount)
		assert.Equal(t, "KES", body.Currency)
		assert.Equal(t, "JN-1001-abcd1234", body.Reference)
		assert.Equal(t, "JN-1001", body.Metadata["order_number"])
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/0peioxfhpn","access_code":"0peioxfhpn","reference":"JN-1001-abcd1234"}}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(config.PaystackConfig{BaseURL: srv.URL + "/", SecretKey: "sk_test"}, httpclient.NewClient(nil, time.Second), zerolog.Nop())
	assert.Equal(t, domain.ProviderPaystack, client.Provider())

	session, err := client.Initiate(context.Background(), domain.PaymentRequest{
		OrderNumber: "JN-1001", Amount: 2600.5, Email: "achieng@example.com", Reference: "JN-1001-abcd1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "JN-1001-abcd1234", session.Reference)
	assert.Equal(t, "https://checkout.paystack.com/0peioxfhpn", session.CheckoutURL)

	_, err = client.Initiate(context.Background(), domain.PaymentRequest{OrderNumber: "JN-1001", Amount: 10})
	assert.ErrorContains(t, err, "email")
}

func TestPaystackClient_InitiateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(config.PaystackConfig{BaseURL: srv.URL, SecretKey: "bad"}, httpclient.NewClient(nil, time.Second), zerolog.Nop())
	_, err := client.Initiate(context.Background(), domain.PaymentRequest{OrderNumber: "JN-1", Amount: 10, Email: "a@b.co", Reference: "r"})
	var statusErr *httpclient.StatusError
	require.True(t, errors.As(err, &statusErr), "err = %v", err)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestPaystackClient_ParseWebhook(t *testing.T) {
	client := NewPaystackClient(config.PaystackConfig{SecretKey: "sk_test"}, nil, zerolog.Nop())

	success := []byte(`{"event":"charge.success","data":{"id":302961,"reference":"JN-1001-abcd1234","status":"success","gateway_response":"Approved"}}`)
	result, err := client.ParseWebhook(success, client.Sign(success))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentResult{Provider: domain.ProviderPaystack, Reference: "JN-1001-abcd1234", Paid: true, Receipt: "302961"}, result)

	failed := []byte(`{"event":"charge.failed","data":{"reference":"JN-1001-abcd1234","status":"failed","gateway_response":"Declined"}}`)
	result, err = client.ParseWebhook(failed, client.Sign(failed))
	require.NoError(t, err)
	assert.False(t, result.Paid)
	assert.Equal(t, "Declined", result.Reason)

	_, err = client.ParseWebhook(success, "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	transfer := []byte(`{"event":"transfer.success","data":{"reference":"x"}}`)
	_, err = client.ParseWebhook(transfer, client.Sign(transfer))
	assert.ErrorIs(t, err, ErrIgnoredEvent)
}

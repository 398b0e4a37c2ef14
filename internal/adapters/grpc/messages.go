// internal/adapters/grpc/messages.go
package grpc

import (
	"github.com/jncrafts/storefront/internal/domain"
)

// Status is the envelope every response carries.
type Status struct {
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Code      int32             `json:"code"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct {
	Status
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

type LogoutRequest struct{}

type LogoutResponse struct {
	Status
}

// SelectDeliveryRequest picks a delivery method. There is deliberately no
// cost field: the price always comes from the pricing engine.
type SelectDeliveryRequest struct {
	Method          string                 `json:"method"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	CourierDetails  *domain.CourierDetails `json:"courierDetails,omitempty"`
}

// GetDeliveryRequest optionally carries the cart so the response can include
// recomputed checkout totals.
type GetDeliveryRequest struct {
	Items    []domain.CartLineItem `json:"items,omitempty"`
	Discount *domain.Discount      `json:"discount,omitempty"`
}

type ClearDeliveryRequest struct{}

type Summary struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	DeliveryCost float64 `json:"deliveryCost"`
	Total        float64 `json:"total"`
}

type DeliveryResponse struct {
	Status
	State    string                  `json:"state"`
	Delivery *domain.DeliveryDetails `json:"deliveryDetails,omitempty"`
	Warning  string                  `json:"warning,omitempty"`
	Summary  *Summary                `json:"summary,omitempty"`
}

type PlaceOrderRequest struct {
	CustomerInfo    domain.CustomerInfo    `json:"customerInfo"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	Items           []domain.CartLineItem  `json:"items"`
	Discount        *domain.Discount       `json:"discount,omitempty"`
}

type OrderData struct {
	OrderNumber     string                 `json:"orderNumber"`
	CreatedAt       string                 `json:"createdAt"`
	Status          string                 `json:"status"`
	PaymentStatus   string                 `json:"paymentStatus"`
	Subtotal        float64                `json:"subtotal"`
	Discount        float64                `json:"discount"`
	Total           float64                `json:"total"`
	DeliveryDetails domain.DeliveryDetails `json:"deliveryDetails"`
	Items           []domain.CartLineItem  `json:"items"`
}

type PlaceOrderResponse struct {
	Status
	Data *OrderData `json:"data,omitempty"`
}

type ListOrdersRequest struct {
	Limit int64 `json:"limit"`
	Page  int64 `json:"page"`
}

type OrdersData struct {
	Orders      []*OrderData `json:"orders"`
	Total       int64        `json:"total"`
	CurrentPage int64        `json:"current_page"`
	PerPage     int64        `json:"per_page"`
	TotalInPage int64        `json:"total_in_page"`
	LastPage    int64        `json:"last_page"`
}

type ListOrdersResponse struct {
	Status
	Data *OrdersData `json:"data,omitempty"`
}

type CancelOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
}

type CancelOrderResponse struct {
	Status
}

type InitiatePaymentRequest struct {
	OrderNumber string `json:"orderNumber"`
	Provider    string `json:"provider"`
	Phone       string `json:"phone,omitempty"`
}

type PaymentData struct {
	Provider        string `json:"provider"`
	Reference       string `json:"reference"`
	CheckoutURL     string `json:"checkoutUrl,omitempty"`
	CustomerMessage string `json:"customerMessage,omitempty"`
}

type InitiatePaymentResponse struct {
	Status
	Data *PaymentData `json:"data,omitempty"`
}

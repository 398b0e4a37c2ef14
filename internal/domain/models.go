// internal/domain/models.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID       int64
	Email    string
	Password string
}

// Coordinate is a WGS 84 point in degrees.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type DeliveryMethod string

const (
	HomeDelivery      DeliveryMethod = "home_delivery"
	PickupMtaani      DeliveryMethod = "pickup_mtaani"
	PickupInTown      DeliveryMethod = "pickup_in_town"
	CustomerLogistics DeliveryMethod = "customer_logistics"
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(s); m {
	case HomeDelivery, PickupMtaani, PickupInTown, CustomerLogistics:
		return m, nil
	}
	return "", fmt.Errorf("unknown delivery method %q", s)
}

type CourierDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Company      string `json:"company,omitempty"`
	PickupWindow string `json:"pickupWindow,omitempty"`
}

type DeliveryDetails struct {
	Method          DeliveryMethod  `json:"method"`
	Cost            float64         `json:"cost"`
	Location        string          `json:"location"`
	DistanceFromCBD float64         `json:"distanceFromCBD"`
	CourierDetails  *CourierDetails `json:"courierDetails,omitempty"`
}

type ShippingAddress struct {
	Address    string   `json:"address"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
}

// Coordinate returns the device-supplied position, if both halves are set.
func (a ShippingAddress) Coordinate() (Coordinate, bool) {
	if a.Lat == nil || a.Lon == nil {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *a.Lat, Longitude: *a.Lon}, true
}

// SameAs reports whether a and b name the same place, ignoring case and
// surrounding whitespace in the text fields.
func (a ShippingAddress) SameAs(b ShippingAddress) bool {
	same := func(x, y string) bool { return strings.EqualFold(strings.TrimSpace(x), strings.TrimSpace(y)) }
	if !same(a.Address, b.Address) || !same(a.City, b.City) || !same(a.PostalCode, b.PostalCode) {
		return false
	}
	ac, aok := a.Coordinate()
	bc, bok := b.Coordinate()
	return aok == bok && ac == bc
}

func (a ShippingAddress) Label() string {
	switch {
	case a.Address == "":
		return a.City
	case a.City == "":
		return a.Address
	}
	return a.Address + ", " + a.City
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CartLineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

// AppliedDiscount is a discount already resolved against the cart subtotal.
type AppliedDiscount struct {
	Code   string       `json:"code,omitempty"`
	Type   DiscountType `json:"type"`
	Amount float64      `json:"amount"`
}

type OrderRequest struct {
	CustomerInfo    CustomerInfo     `json:"customerInfo"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	DeliveryDetails DeliveryDetails  `json:"deliveryDetails"`
	Items           []CartLineItem   `json:"items"`
	Total           float64          `json:"total"`
	Discount        *AppliedDiscount `json:"discount,omitempty"`
}

const (
	OrderStatusPending   = "Pending"
	OrderStatusCancelled = "Cancelled"

	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Order is the local record of a request accepted by the order-creation boundary.
type Order struct {
	OrderNumber      string
	UserID           int64
	Request          OrderRequest
	Subtotal         float64
	Status           string
	PaymentStatus    string
	PaymentProvider  string
	PaymentReference string
	CreatedAt        time.Time
}

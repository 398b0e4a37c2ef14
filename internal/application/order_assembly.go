// internal/application/order_assembly.go
package application

import (
	"fmt"
	"math"
	"net/mail"
	"strings"

	"github.com/jncrafts/storefront/internal/domain"
)

type OrderInput struct {
	Customer domain.CustomerInfo
	Shipping domain.ShippingAddress
	Delivery *domain.DeliveryDetails
	Items    []domain.CartLineItem
	// Discount is already resolved; its amount is taken as-is.
	Discount *domain.AppliedDiscount
}

// AssembleOrder validates the checkout data and builds the request sent to
// the order-creation boundary. Every problem is reported in a single
// *domain.ValidationError.
func AssembleOrder(in OrderInput) (*domain.OrderRequest, error) {
	verr := &domain.ValidationError{}

	if len(in.Items) == 0 {
		verr.Add("items", "cart is empty")
	}
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			verr.Add(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}
		if item.Price < 0 || math.IsNaN(item.Price) {
			verr.Add(fmt.Sprintf("items[%d].price", i), "must not be negative")
		}
	}
	if in.Delivery == nil {
		verr.Add("deliveryDetails", "select a delivery method")
	}

	if strings.TrimSpace(in.Customer.Name) == "" {
		verr.Add("customerInfo.name", "is required")
	}
	if email := strings.TrimSpace(in.Customer.Email); email == "" {
		verr.Add("customerInfo.email", "is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		verr.Add("customerInfo.email", "is not a valid email address")
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		verr.Add("customerInfo.phone", "is required")
	}

	if strings.TrimSpace(in.Shipping.Address) == "" {
		verr.Add("shippingAddress.address", "is required")
	}
	if strings.TrimSpace(in.Shipping.City) == "" {
		verr.Add("shippingAddress.city", "is required")
	}
	if strings.TrimSpace(in.Shipping.PostalCode) == "" {
		verr.Add("shippingAddress.postalCode", "is required")
	}

	if in.Discount != nil && (in.Discount.Amount < 0 || math.IsNaN(in.Discount.Amount)) {
		verr.Add("discount.amount", "must not be negative")
	}

	if !verr.Empty() {
		return nil, verr
	}

	items := make([]domain.CartLineItem, len(in.Items))
	copy(items, in.Items)

	var discount *domain.AppliedDiscount
	discountAmount := 0.0
	if in.Discount != nil {
		d := *in.Discount
		discount = &d
		discountAmount = d.Amount
	}

	return &domain.OrderRequest{
		CustomerInfo:    in.Customer,
		ShippingAddress: in.Shipping,
		DeliveryDetails: *cloneDetails(in.Delivery),
		Items:           items,
		Total:           roundMoney(Subtotal(items) - discountAmount + in.Delivery.Cost),
		Discount:        discount,
	}, nil
}

func Subtotal(items []domain.CartLineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return roundMoney(sum)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

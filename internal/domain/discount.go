// internal/domain/discount.go
package domain

import "fmt"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is a promo code as the customer applied it, before it is priced.
type Discount struct {
	Code  string       `json:"code"`
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// Resolve prices the discount against subtotal. The amount never exceeds the
// subtotal and is never negative.
func (d Discount) Resolve(subtotal float64) (AppliedDiscount, error) {
	var amount float64
	switch d.Type {
	case DiscountPercentage:
		if d.Value < 0 || d.Value > 100 {
			return AppliedDiscount{}, fmt.Errorf("percentage discount must be between 0 and 100")
		}
		amount = subtotal * d.Value / 100
	case DiscountFixed:
		if d.Value < 0 {
			return AppliedDiscount{}, fmt.Errorf("fixed discount must not be negative")
		}
		amount = d.Value
	default:
		return AppliedDiscount{}, fmt.Errorf("unknown discount type %q", d.Type)
	}
	if amount > subtotal {
		amount = subtotal
	}
	if amount < 0 {
		amount = 0
	}
	return AppliedDiscount{Code: d.Code, Type: d.Type, Amount: amount}, nil
}

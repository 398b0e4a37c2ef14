// internal/domain/payment.go
package domain

type PaymentProvider string

const (
	ProviderMpesa    PaymentProvider = "mpesa"
	ProviderPaystack PaymentProvider = "paystack"
)

type PaymentRequest struct {
	OrderNumber string
	Amount      float64
	Phone       string
	Email       string
	Reference   string
}

// PaymentSession is what a gateway hands back once a payment has been started.
type PaymentSession struct {
	Provider        PaymentProvider
	Reference       string
	CheckoutURL     string
	CustomerMessage string
}

// PaymentResult is a gateway's final word on a payment, taken from a callback.
type PaymentResult struct {
	Provider  PaymentProvider
	Reference string
	Paid      bool
	Receipt   string
	Reason    string
}

// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"
	"time"

	"github.com/jncrafts/storefront/internal/domain"
)

type AuthPort interface {
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}

type OrderRepositoryPort interface {
	CreateUser(ctx context.Context, email, password string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SaveOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderNumber string, userID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, limit, page int64) ([]*domain.Order, int64, error)
	CancelOrder(ctx context.Context, orderNumber string, userID int64) error
	AttachPayment(ctx context.Context, orderNumber string, provider domain.PaymentProvider, reference string) error
	// UpdatePaymentStatus returns the order after the update and the payment
	// status it had before.
	UpdatePaymentStatus(ctx context.Context, reference, status string) (*domain.Order, string, error)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type TokenBlacklistPort interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// GeocoderPort resolves a free-text address. Implementations return
// domain.ErrGeocodeNotFound or domain.ErrGeocodeUnavailable and never retry.
type GeocoderPort interface {
	Geocode(ctx context.Context, address, city string) (domain.Coordinate, error)
}

// OrderGatewayPort is the external order-creation endpoint. It returns the
// order number, or a *domain.SubmissionError.
type OrderGatewayPort interface {
	CreateOrder(ctx context.Context, req *domain.OrderRequest) (string, error)
}

type NotificationPort interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
	PaymentConfirmed(ctx context.Context, order *domain.Order) error
}

type PaymentPort interface {
	Provider() domain.PaymentProvider
	Initiate(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error)
}

type DeliveryListener interface {
	DeliveryReady(details domain.DeliveryDetails)
}

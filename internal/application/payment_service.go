// internal/application/payment_service.go
package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

// PaymentService starts payments for placed orders and applies the gateways'
// callbacks. It only ever charges the total stored with the order.
type PaymentService struct {
	repo      ports.OrderRepositoryPort
	cache     ports.CachePort
	notifier  ports.NotificationPort
	providers map[domain.PaymentProvider]ports.PaymentPort
	log       zerolog.Logger
}

func NewPaymentService(repo ports.OrderRepositoryPort, cache ports.CachePort, notifier ports.NotificationPort, log zerolog.Logger, providers ...ports.PaymentPort) *PaymentService {
	m := make(map[domain.PaymentProvider]ports.PaymentPort, len(providers))
	for _, p := range providers {
		m[p.Provider()] = p
	}
	return &PaymentService{repo: repo, cache: cache, notifier: notifier, providers: m, log: log}
}

func (s *PaymentService) Initiate(ctx context.Context, userID int64, orderNumber string, provider domain.PaymentProvider, phone string) (*domain.PaymentSession, error) {
	gateway, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported payment provider %q", provider)
	}
	order, err := s.repo.GetOrder(ctx, orderNumber, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order not found")
	}
	if order.Status != domain.OrderStatusPending || order.PaymentStatus == domain.PaymentStatusPaid {
		return nil, errors.New("order is not awaiting payment")
	}
	if phone == "" {
		phone = order.Request.CustomerInfo.Phone
	}

	session, err := gateway.Initiate(ctx, domain.PaymentRequest{
		OrderNumber: order.OrderNumber,
		Amount:      order.Request.Total,
		Phone:       phone,
		Email:       order.Request.CustomerInfo.Email,
		Reference:   fmt.Sprintf("%s-%s", order.OrderNumber, uuid.NewString()[:8]),
	})
	if err != nil {
		s.log.Error().Err(err).Str("order_number", orderNumber).Str("provider", string(provider)).Msg("payment initiation failed")
		return nil, err
	}
	if err := s.repo.AttachPayment(ctx, order.OrderNumber, provider, session.Reference); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)

	s.log.Info().
		Str("order_number", orderNumber).
		Str("provider", string(provider)).
		Str("reference", session.Reference).
		Msg("payment initiated")
	return session, nil
}

// Complete records a gateway's verdict on a payment. Gateways redeliver
// callbacks, so a verdict that leaves the order unchanged is acknowledged
// without logging or notifying again.
func (s *PaymentService) Complete(ctx context.Context, result domain.PaymentResult) error {
	status := domain.PaymentStatusFailed
	if result.Paid {
		status = domain.PaymentStatusPaid
	}
	order, previous, err := s.repo.UpdatePaymentStatus(ctx, result.Reference, status)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("unknown payment reference %q", result.Reference)
	}
	if order.PaymentStatus == previous {
		s.log.Debug().
			Str("order_number", order.OrderNumber).
			Str("reference", result.Reference).
			Str("payment_status", order.PaymentStatus).
			Msg("payment callback left the order unchanged")
		return nil
	}
	s.invalidate(ctx, order.UserID)

	evt := s.log.Info()
	if order.PaymentStatus != domain.PaymentStatusPaid {
		evt = s.log.Warn().Str("reason", result.Reason)
	}
	evt.Str("order_number", order.OrderNumber).
		Str("provider", string(result.Provider)).
		Str("status", order.PaymentStatus).
		Str("previous_status", previous).
		Str("receipt", result.Receipt).
		Msg("payment completed")

	if order.PaymentStatus == domain.PaymentStatusPaid {
		if err := s.notifier.PaymentConfirmed(ctx, order); err != nil {
			s.log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("failed to publish payment notification")
		}
	}
	return nil
}

func (s *PaymentService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.DeleteByPrefix(ctx, ordersCachePrefix(userID)); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to invalidate order cache")
	}
}

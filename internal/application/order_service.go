// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

type PlaceOrderInput struct {
	Customer domain.CustomerInfo
	Shipping domain.ShippingAddress
	Items    []domain.CartLineItem
	Discount *domain.Discount
}

type OrderService struct {
	repo     ports.OrderRepositoryPort
	cache    ports.CachePort
	gateway  ports.OrderGatewayPort
	notifier ports.NotificationPort
	sessions *SessionRegistry
	log      zerolog.Logger
}

func NewOrderService(repo ports.OrderRepositoryPort, cache ports.CachePort, gateway ports.OrderGatewayPort, notifier ports.NotificationPort, sessions *SessionRegistry, log zerolog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		cache:    cache,
		gateway:  gateway,
		notifier: notifier,
		sessions: sessions,
		log:      log,
	}
}

// PlaceOrder assembles the customer's checkout into an order request and
// submits it once. Validation problems are returned before anything is sent;
// submission failures come back as *domain.SubmissionError and are not retried.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (*domain.Order, error) {
	var delivery *domain.DeliveryDetails
	if session, ok := s.sessions.Lookup(userID); ok {
		d, err := session.DeliveryFor(ctx, in.Shipping)
		if err != nil {
			return nil, err
		}
		delivery = d
	}

	subtotal := Subtotal(in.Items)
	var applied *domain.AppliedDiscount
	if in.Discount != nil {
		d, err := in.Discount.Resolve(subtotal)
		if err != nil {
			verr := &domain.ValidationError{}
			verr.Add("discount", err.Error())
			return nil, verr
		}
		applied = &d
	}

	req, err := AssembleOrder(OrderInput{
		Customer: in.Customer,
		Shipping: in.Shipping,
		Delivery: delivery,
		Items:    in.Items,
		Discount: applied,
	})
	if err != nil {
		return nil, err
	}

	orderNumber, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		var subErr *domain.SubmissionError
		if !errors.As(err, &subErr) {
			err = &domain.SubmissionError{Retryable: true, Err: err}
		}
		s.log.Error().Err(err).Int64("user_id", userID).Float64("total", req.Total).Msg("order submission failed")
		return nil, err
	}

	order := &domain.Order{
		OrderNumber:   orderNumber,
		UserID:        userID,
		Request:       *req,
		Subtotal:      subtotal,
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}
	s.log.Info().
		Str("order_number", orderNumber).
		Int64("user_id", userID).
		Str("delivery_method", string(req.DeliveryDetails.Method)).
		Float64("total", req.Total).
		Msg("order placed")

	// The order exists upstream now; local bookkeeping must not turn it into a failure.
	if err := s.repo.SaveOrder(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_number", orderNumber).Msg("failed to record placed order")
	}
	s.invalidate(ctx, userID)
	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		s.log.Warn().Err(err).Str("order_number", orderNumber).Msg("failed to publish order placed notification")
	}
	s.sessions.Complete(userID)
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64, limit, page int64) ([]*domain.Order, int64, error) {
	key := fmt.Sprintf("%s%d:%d", ordersCachePrefix(userID), limit, page)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached struct {
			Orders []*domain.Order
			Total  int64
		}
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.Orders, cached.Total, nil
		}
	}

	orders, total, err := s.repo.ListOrders(ctx, userID, limit, page)
	if err != nil {
		return nil, 0, err
	}
	cacheData := struct {
		Orders []*domain.Order
		Total  int64
	}{Orders: orders, Total: total}
	if err := s.cache.Set(ctx, key, cacheData); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache order list")
	}
	return orders, total, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderNumber string, userID int64) error {
	if err := s.repo.CancelOrder(ctx, orderNumber, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *OrderService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.DeleteByPrefix(ctx, ordersCachePrefix(userID)); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to invalidate order cache")
	}
}

func ordersCachePrefix(userID int64) string {
	return fmt.Sprintf("orders:%d:", userID)
}

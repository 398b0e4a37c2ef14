// internal/application/checkout.go
package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/domain"
)

type CheckoutSummary struct {
	Subtotal     float64
	Discount     float64
	DeliveryCost float64
	Total        float64
}

// CheckoutSession is the state of one customer's checkout. It owns the
// delivery selector and is the only listener of its results.
type CheckoutSession struct {
	ID       string
	UserID   int64
	Selector *DeliverySelector

	log zerolog.Logger

	mu      sync.Mutex
	touched time.Time
}

func (c *CheckoutSession) DeliveryReady(details domain.DeliveryDetails) {
	c.touch()

	c.log.Info().
		Str("session", c.ID).
		Str("method", string(details.Method)).
		Float64("cost", details.Cost).
		Msg("delivery ready, checkout totals refreshed")
}

// Delivery is the delivery decision an order would be placed with right now.
func (c *CheckoutSession) Delivery() *domain.DeliveryDetails {
	return c.Selector.Delivery()
}

// DeliveryFor is the delivery decision for shipping to addr. A decision priced
// for another address is priced again, with the same method and courier,
// before it is returned.
func (c *CheckoutSession) DeliveryFor(ctx context.Context, addr domain.ShippingAddress) (*domain.DeliveryDetails, error) {
	snap := c.Selector.Snapshot()
	if snap.Details == nil || snap.Address.SameAs(addr) {
		return snap.Details, nil
	}
	c.log.Info().
		Str("session", c.ID).
		Str("method", string(snap.Details.Method)).
		Str("priced_for", snap.Address.Label()).
		Str("shipping_to", addr.Label()).
		Msg("shipping address changed, pricing delivery again")

	snap, err := c.Selector.Select(ctx, snap.Details.Method, addr, snap.Details.CourierDetails)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		verr = &domain.ValidationError{}
		verr.Add("deliveryDetails", err.Error())
		return nil, verr
	}
	return snap.Details, nil
}

// Summary recomputes checkout totals with the current delivery decision. The
// delivery cost is zero until a method has been priced.
func (c *CheckoutSession) Summary(items []domain.CartLineItem, discount *domain.Discount) (CheckoutSummary, error) {
	sum := CheckoutSummary{Subtotal: Subtotal(items)}
	if discount != nil {
		applied, err := discount.Resolve(sum.Subtotal)
		if err != nil {
			verr := &domain.ValidationError{}
			verr.Add("discount", err.Error())
			return CheckoutSummary{}, verr
		}
		sum.Discount = applied.Amount
	}
	if d := c.Delivery(); d != nil {
		sum.DeliveryCost = d.Cost
	}
	sum.Total = roundMoney(sum.Subtotal - sum.Discount + sum.DeliveryCost)
	return sum, nil
}

func (c *CheckoutSession) lastTouched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched
}

func (c *CheckoutSession) touch() {
	c.mu.Lock()
	c.touched = time.Now()
	c.mu.Unlock()
}

// SessionRegistry keeps one checkout session per customer.
type SessionRegistry struct {
	pricing *PricingEngine
	log     zerolog.Logger

	mu       sync.Mutex
	sessions map[int64]*CheckoutSession
}

func NewSessionRegistry(pricing *PricingEngine, log zerolog.Logger) *SessionRegistry {
	return &SessionRegistry{
		pricing:  pricing,
		log:      log,
		sessions: make(map[int64]*CheckoutSession),
	}
}

// Get returns the customer's session, opening one if needed.
func (r *SessionRegistry) Get(userID int64) *CheckoutSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[userID]; ok {
		s.touch()
		return s
	}
	s := &CheckoutSession{
		ID:      uuid.NewString(),
		UserID:  userID,
		log:     r.log,
		touched: time.Now(),
	}
	s.Selector = NewDeliverySelector(r.pricing, s, r.log.With().Str("session", s.ID).Logger())
	r.sessions[userID] = s
	return s
}

func (r *SessionRegistry) Lookup(userID int64) (*CheckoutSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Complete discards the session once its order has been placed.
func (r *SessionRegistry) Complete(userID int64) {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
}

// Sweep drops sessions idle for longer than maxIdle and reports how many.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.lastTouched().Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

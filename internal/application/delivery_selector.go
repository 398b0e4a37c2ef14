// internal/application/delivery_selector.go
package application

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

type DeliveryState int

const (
	DeliveryIdle DeliveryState = iota
	DeliveryCalculating
	DeliveryReady
	// DeliveryError is recoverable: the customer may retry or pick another
	// method. Details may still be set from a fallback quote.
	DeliveryError
)

func (s DeliveryState) String() string {
	switch s {
	case DeliveryCalculating:
		return "calculating"
	case DeliveryReady:
		return "ready"
	case DeliveryError:
		return "error"
	}
	return "idle"
}

type DeliverySnapshot struct {
	State DeliveryState
	// Address is the shipping address the current selection is priced for.
	Address domain.ShippingAddress
	Details *domain.DeliveryDetails
	Warning string
	Err     error
}

// DeliverySelector drives pricing for one checkout session and holds the
// single active delivery decision.
//
// Selections are not cancelled when superseded. Whichever computation
// finishes last writes the state.
type DeliverySelector struct {
	pricing  *PricingEngine
	listener ports.DeliveryListener
	log      zerolog.Logger

	mu      sync.Mutex
	state   DeliveryState
	address domain.ShippingAddress
	details *domain.DeliveryDetails
	warning string
	err     error
}

func NewDeliverySelector(pricing *PricingEngine, listener ports.DeliveryListener, log zerolog.Logger) *DeliverySelector {
	return &DeliverySelector{pricing: pricing, listener: listener, log: log}
}

// Select prices method for addr and settles into Ready, or into Error with
// best-effort details when the geocoder failed. An error is returned only for
// input that cannot be priced at all.
func (s *DeliverySelector) Select(ctx context.Context, method domain.DeliveryMethod, addr domain.ShippingAddress, courier *domain.CourierDetails) (DeliverySnapshot, error) {
	s.mu.Lock()
	s.state = DeliveryCalculating
	s.address = addr
	s.details, s.warning, s.err = nil, "", nil
	s.mu.Unlock()

	quote, err := s.pricing.Quote(ctx, method, addr, courier)

	s.mu.Lock()
	s.address = addr
	if err != nil {
		s.state = DeliveryError
		s.details, s.warning, s.err = nil, "", err
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, err
	}

	details := quote.Details
	s.details, s.warning, s.err = &details, quote.Warning, quote.Err
	if quote.Err != nil {
		s.state = DeliveryError
	} else {
		s.state = DeliveryReady
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Debug().
		Str("method", string(method)).
		Str("state", snap.State.String()).
		Float64("cost", details.Cost).
		Float64("distance_km", details.DistanceFromCBD).
		Msg("delivery priced")

	if snap.State == DeliveryReady && s.listener != nil {
		s.listener.DeliveryReady(*snap.Details)
	}
	return snap, nil
}

// Deselect drops the current decision and returns to Idle.
func (s *DeliverySelector) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DeliveryIdle
	s.address = domain.ShippingAddress{}
	s.details, s.warning, s.err = nil, "", nil
}

func (s *DeliverySelector) Snapshot() DeliverySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Delivery returns the decision checkout may use, or nil while nothing usable
// is settled.
func (s *DeliverySelector) Delivery() *domain.DeliveryDetails {
	return s.Snapshot().Details
}

func (s *DeliverySelector) snapshotLocked() DeliverySnapshot {
	return DeliverySnapshot{
		State:   s.state,
		Address: s.address,
		Details: cloneDetails(s.details),
		Warning: s.warning,
		Err:     s.err,
	}
}

func cloneDetails(d *domain.DeliveryDetails) *domain.DeliveryDetails {
	if d == nil {
		return nil
	}
	c := *d
	if d.CourierDetails != nil {
		courier := *d.CourierDetails
		c.CourierDetails = &courier
	}
	return &c
}

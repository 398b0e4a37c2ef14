// internal/application/checkout_test.go
package application

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jncrafts/storefront/internal/domain"
)

func TestSessionRegistry_Lifecycle(t *testing.T) {
	registry := NewSessionRegistry(newTestPricing(nil), zerolog.Nop())

	_, ok := registry.Lookup(7)
	assert.False(t, ok)

	s := registry.Get(7)
	assert.Equal(t, int64(7), s.UserID)
	assert.NotEmpty(t, s.ID)
	assert.Same(t, s, registry.Get(7), "one session per customer")
	assert.NotSame(t, s, registry.Get(8))

	registry.Complete(7)
	_, ok = registry.Lookup(7)
	assert.False(t, ok)
	assert.NotSame(t, s, registry.Get(7))
}

func TestSessionRegistry_Sweep(t *testing.T) {
	registry := NewSessionRegistry(newTestPricing(nil), zerolog.Nop())
	stale := registry.Get(1)
	registry.Get(2)

	stale.mu.Lock()
	stale.touched = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	assert.Equal(t, 1, registry.Sweep(time.Hour))
	_, ok := registry.Lookup(1)
	assert.False(t, ok)
	_, ok = registry.Lookup(2)
	assert.True(t, ok)
}

func TestCheckoutSession_Summary(t *testing.T) {
	registry := NewSessionRegistry(newTestPricing(nil), zerolog.Nop())
	s := registry.Get(1)
	items := []domain.CartLineItem{{ProductID: "bag-01", Price: 1000, Quantity: 2}}
	discount := &domain.Discount{Code: "KARIBU", Type: domain.DiscountFixed, Value: 200}

	sum, err := s.Summary(items, discount)
	require.NoError(t, err)
	assert.Equal(t, CheckoutSummary{Subtotal: 2000, Discount: 200, DeliveryCost: 0, Total: 1800}, sum)

	s.mu.Lock()
	s.touched = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	_, err = s.Selector.Select(context.Background(), domain.PickupMtaani, homeAddr, nil)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), s.lastTouched(), time.Minute, "a ready delivery keeps the session alive")

	sum, err = s.Summary(items, discount)
	require.NoError(t, err)
	assert.Equal(t, 800.0, sum.DeliveryCost)
	assert.Equal(t, 2600.0, sum.Total)

	_, err = s.Summary(items, &domain.Discount{Type: domain.DiscountPercentage, Value: 150})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCheckoutSession_DeliveryFor(t *testing.T) {
	registry := NewSessionRegistry(newTestPricing(nil), zerolog.Nop())
	s := registry.Get(1)
	ctx := context.Background()

	d, err := s.DeliveryFor(ctx, homeAddr)
	require.NoError(t, err)
	assert.Nil(t, d, "nothing selected yet")

	_, err = s.Selector.Select(ctx, domain.PickupMtaani, homeAddr, nil)
	require.NoError(t, err)

	d, err = s.DeliveryFor(ctx, homeAddr)
	require.NoError(t, err)
	assert.Equal(t, "Pickup Mtaani agent - "+homeAddr.Label(), d.Location)

	kilimani := domain.ShippingAddress{Address: "Argwings Kodhek Rd", City: "Nairobi", PostalCode: "00100"}
	d, err = s.DeliveryFor(ctx, kilimani)
	require.NoError(t, err)
	assert.Equal(t, domain.PickupMtaani, d.Method)
	assert.Equal(t, "Pickup Mtaani agent - "+kilimani.Label(), d.Location)
	assert.True(t, s.Selector.Snapshot().Address.SameAs(kilimani))
}

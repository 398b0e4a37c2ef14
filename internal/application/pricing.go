// internal/application/pricing.go
package application

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

// Quote is a priced delivery. Err holds a geocoder failure that was absorbed
// by falling back to the default distance; Details are usable either way.
type Quote struct {
	Details domain.DeliveryDetails
	Warning string
	Err     error
}

type PricingEngine struct {
	tariff   config.DeliveryPricing
	geocoder ports.GeocoderPort
	log      zerolog.Logger
}

func NewPricingEngine(tariff config.DeliveryPricing, geocoder ports.GeocoderPort, log zerolog.Logger) *PricingEngine {
	return &PricingEngine{tariff: tariff, geocoder: geocoder, log: log}
}

func (e *PricingEngine) CBD() domain.Coordinate {
	return domain.Coordinate{Latitude: e.tariff.CBDLatitude, Longitude: e.tariff.CBDLongitude}
}

// Cost is the base fee plus one band fee for every started band of distance.
func (e *PricingEngine) Cost(distanceKm float64) float64 {
	return e.tariff.BaseFee + math.Ceil(distanceKm/e.tariff.BandKm)*e.tariff.BandFee
}

// Price builds the delivery details for a method once the distance is known.
func (e *PricingEngine) Price(method domain.DeliveryMethod, distanceKm float64, location string, courier *domain.CourierDetails) domain.DeliveryDetails {
	switch method {
	case domain.PickupInTown:
		return domain.DeliveryDetails{Method: method, Location: e.tariff.InTownLocation}
	case domain.CustomerLogistics:
		return domain.DeliveryDetails{Method: method, Location: e.tariff.CustomerLocation, CourierDetails: courier}
	}
	return domain.DeliveryDetails{
		Method:          method,
		Cost:            e.Cost(distanceKm),
		Location:        location,
		DistanceFromCBD: distanceKm,
	}
}

// Quote prices a delivery method for the given address. It only returns an
// error for unusable input; geocoder failures degrade to the fallback distance.
func (e *PricingEngine) Quote(ctx context.Context, method domain.DeliveryMethod, addr domain.ShippingAddress, courier *domain.CourierDetails) (Quote, error) {
	switch method {
	case domain.HomeDelivery:
		return e.quoteHome(ctx, addr), nil
	case domain.PickupMtaani:
		location := e.tariff.MtaaniLocation
		if label := addr.Label(); label != "" {
			location = location + " - " + label
		}
		return Quote{Details: e.Price(method, e.tariff.MtaaniKm, location, nil)}, nil
	case domain.PickupInTown:
		return Quote{Details: e.Price(method, 0, "", nil)}, nil
	case domain.CustomerLogistics:
		if err := validateCourier(courier); err != nil {
			return Quote{}, err
		}
		c := *courier
		return Quote{Details: e.Price(method, 0, "", &c)}, nil
	}
	return Quote{}, fmt.Errorf("unknown delivery method %q", method)
}

func (e *PricingEngine) quoteHome(ctx context.Context, addr domain.ShippingAddress) Quote {
	point, ok := addr.Coordinate()
	var lookupErr error
	if !ok {
		point, lookupErr = e.geocoder.Geocode(ctx, addr.Address, addr.City)
	}

	distance := math.NaN()
	if lookupErr == nil {
		distance = domain.HaversineKm(e.CBD(), point)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		if lookupErr == nil {
			lookupErr = fmt.Errorf("%w: unusable coordinates %v", domain.ErrGeocodeNotFound, point)
		}
		e.log.Warn().
			Err(lookupErr).
			Str("address", addr.Label()).
			Float64("fallback_km", e.tariff.FallbackKm).
			Msg("geocoding failed, using fallback delivery distance")
		return Quote{
			Details: e.Price(domain.HomeDelivery, e.tariff.FallbackKm, addr.Label(), nil),
			Warning: fallbackWarning(lookupErr, e.tariff.FallbackKm),
			Err:     lookupErr,
		}
	}
	return Quote{Details: e.Price(domain.HomeDelivery, distance, addr.Label(), nil)}
}

func fallbackWarning(err error, km float64) string {
	if errors.Is(err, domain.ErrGeocodeUnavailable) {
		return fmt.Sprintf("Address lookup is temporarily unavailable; delivery is estimated at %g km from the CBD.", km)
	}
	return fmt.Sprintf("We could not locate your address; delivery is estimated at %g km from the CBD.", km)
}

func validateCourier(c *domain.CourierDetails) error {
	verr := &domain.ValidationError{}
	if c == nil || c.Name == "" {
		verr.Add("courierDetails.name", "is required")
	}
	if c == nil || c.Phone == "" {
		verr.Add("courierDetails.phone", "is required")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

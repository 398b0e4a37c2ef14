// internal/adapters/geocoder/cached.go
package geocoder

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

// Cached remembers resolved addresses and collapses concurrent lookups of the
// same address into one upstream request. Only successful lookups are cached.
type Cached struct {
	next  ports.GeocoderPort
	cache ports.CachePort
	group singleflight.Group
	log   zerolog.Logger
}

func NewCached(next ports.GeocoderPort, cache ports.CachePort, log zerolog.Logger) *Cached {
	return &Cached{next: next, cache: cache, log: log}
}

func (c *Cached) Geocode(ctx context.Context, address, city string) (domain.Coordinate, error) {
	key := cacheKey(address, city)
	if data, err := c.cache.Get(ctx, key); err == nil {
		var coord domain.Coordinate
		if err := json.Unmarshal(data, &coord); err == nil {
			metrics.GeocodeRequests.WithLabelValues("cache_hit").Inc()
			return coord, nil
		}
	}

	// The lookup is shared by every caller waiting on key, so one caller
	// going away must not cancel it for the rest. The client applies its own
	// timeout.
	shared := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		coord, err := c.next.Geocode(shared, address, city)
		if err != nil {
			return domain.Coordinate{}, err
		}
		if err := c.cache.Set(shared, key, coord); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("failed to cache geocode result")
		}
		return coord, nil
	})
	if err != nil {
		return domain.Coordinate{}, err
	}
	return v.(domain.Coordinate), nil
}

func cacheKey(address, city string) string {
	return "geocode:" + strings.ToLower(Query(address, city))
}

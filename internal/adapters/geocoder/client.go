// internal/adapters/geocoder/client.go
package geocoder

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/adapters/httpclient"
	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/domain"
)

// Client resolves free-form addresses through a Nominatim-compatible
// /search endpoint. Lookups are made once; there are no retries.
type Client struct {
	baseURL   string
	userAgent string
	country   string
	timeout   time.Duration
	http      *httpclient.Client
	log       zerolog.Logger
}

func NewClient(cfg config.GeocoderConfig, hc *httpclient.Client, log zerolog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		country:   cfg.Country,
		timeout:   cfg.Timeout,
		http:      hc,
		log:       log,
	}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) Geocode(ctx context.Context, address, city string) (domain.Coordinate, error) {
	query := Query(address, city)
	if strings.TrimSpace(address) == "" {
		metrics.GeocodeRequests.WithLabelValues("not_found").Inc()
		return domain.Coordinate{}, errors.Wrap(domain.ErrGeocodeNotFound, "empty address")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if c.country != "" {
		params.Set("countrycodes", c.country)
	}
	header := http.Header{}
	if c.userAgent != "" {
		header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	var places []place
	err := c.http.DoJSON(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), header, nil, &places)
	metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues("unavailable").Inc()
		c.log.Debug().Err(err).Str("query", query).Msg("geocode request failed")
		return domain.Coordinate{}, errors.Wrapf(domain.ErrGeocodeUnavailable, "geocode %q: %v", query, err)
	}
	if len(places) == 0 {
		metrics.GeocodeRequests.WithLabelValues("not_found").Inc()
		return domain.Coordinate{}, errors.Wrapf(domain.ErrGeocodeNotFound, "geocode %q", query)
	}

	lat, latErr := strconv.ParseFloat(places[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(places[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		metrics.GeocodeRequests.WithLabelValues("unavailable").Inc()
		return domain.Coordinate{}, errors.Wrapf(domain.ErrGeocodeUnavailable, "geocode %q: malformed coordinates %q,%q", query, places[0].Lat, places[0].Lon)
	}
	metrics.GeocodeRequests.WithLabelValues("ok").Inc()
	return domain.Coordinate{Latitude: lat, Longitude: lon}, nil
}

// Query is the free-text search string sent for an address.
func Query(address, city string) string {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	if city == "" {
		return address
	}
	return address + ", " + city
}

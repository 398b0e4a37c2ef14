// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string
	LogLevel    string
	GRPCAddr    string
	HTTPAddr    string
	JWTSecret   string

	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Geocoder GeocoderConfig
	Orders   OrderGatewayConfig
	Mpesa    MpesaConfig
	Paystack PaystackConfig
	Delivery DeliveryPricing
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	TTL      time.Duration
}

type KafkaConfig struct {
	Brokers           []string
	NotificationTopic string
}

type TracingConfig struct {
	// Endpoint is an OTLP/HTTP host:port. Tracing is disabled when empty.
	Endpoint string
}

type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
	Country   string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

type OrderGatewayConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type MpesaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

type PaystackConfig struct {
	BaseURL     string
	SecretKey   string
	CallbackURL string
}

// DeliveryPricing holds the delivery tariff. Defaults reproduce the storefront's
// published rates; a YAML file at PRICING_CONFIG may override any of them.
type DeliveryPricing struct {
	BaseFee          float64 `yaml:"base_fee"`
	BandFee          float64 `yaml:"band_fee"`
	BandKm           float64 `yaml:"band_km"`
	CBDLatitude      float64 `yaml:"cbd_latitude"`
	CBDLongitude     float64 `yaml:"cbd_longitude"`
	FallbackKm       float64 `yaml:"fallback_km"`
	MtaaniKm         float64 `yaml:"mtaani_km"`
	MtaaniLocation   string  `yaml:"mtaani_location"`
	InTownLocation   string  `yaml:"in_town_location"`
	CustomerLocation string  `yaml:"customer_location"`
}

func DefaultDeliveryPricing() DeliveryPricing {
	return DeliveryPricing{
		BaseFee:          200,
		BandFee:          200,
		BandKm:           5,
		CBDLatitude:      -1.2921,
		CBDLongitude:     36.8219,
		FallbackKm:       10,
		MtaaniKm:         15,
		MtaaniLocation:   "Pickup Mtaani agent",
		InTownLocation:   "Nairobi CBD, Moi Avenue (in-town pickup)",
		CustomerLocation: "Customer arranged courier",
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	redisTTL, err := getDuration("REDIS_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	geocoderTimeout, err := getDuration("GEOCODER_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	geocoderCacheTTL, err := getDuration("GEOCODER_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	gatewayTimeout, err := getDuration("ORDER_GATEWAY_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "storefront-checkout"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		GRPCAddr:    getEnv("GRPC_ADDR", ":50051"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8081"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "storefront"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Username: getEnv("REDIS_USERNAME", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTL:      redisTTL,
		},
		Kafka: KafkaConfig{
			Brokers:           splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			NotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "storefront.notifications"),
		},
		Tracing: TracingConfig{
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
		Geocoder: GeocoderConfig{
			BaseURL:   getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODER_USER_AGENT", "jncrafts-storefront/1.0"),
			Country:   getEnv("GEOCODER_COUNTRY", "ke"),
			Timeout:   geocoderTimeout,
			CacheTTL:  geocoderCacheTTL,
		},
		Orders: OrderGatewayConfig{
			URL:     getEnv("ORDER_GATEWAY_URL", ""),
			APIKey:  getEnv("ORDER_GATEWAY_API_KEY", ""),
			Timeout: gatewayTimeout,
		},
		Mpesa: MpesaConfig{
			BaseURL:        getEnv("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"),
			ConsumerKey:    getEnv("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: getEnv("MPESA_CONSUMER_SECRET", ""),
			ShortCode:      getEnv("MPESA_SHORTCODE", ""),
			Passkey:        getEnv("MPESA_PASSKEY", ""),
			CallbackURL:    getEnv("MPESA_CALLBACK_URL", ""),
		},
		Paystack: PaystackConfig{
			BaseURL:     getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			SecretKey:   getEnv("PAYSTACK_SECRET_KEY", ""),
			CallbackURL: getEnv("PAYSTACK_CALLBACK_URL", ""),
		},
		Delivery: DefaultDeliveryPricing(),
	}

	if path := getEnv("PRICING_CONFIG", ""); path != "" {
		if err := cfg.Delivery.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Orders.URL == "" {
		missing = append(missing, "ORDER_GATEWAY_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return c.Delivery.Validate()
}

func (p *DeliveryPricing) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pricing config: %w", err)
	}
	return p.Merge(data)
}

// Merge overlays the YAML document onto p. Keys absent from the document keep
// their current values.
func (p *DeliveryPricing) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("parse pricing config: %w", err)
	}
	return p.Validate()
}

func (p DeliveryPricing) Validate() error {
	switch {
	case p.BaseFee < 0 || p.BandFee < 0:
		return fmt.Errorf("delivery fees must not be negative")
	case p.BandKm <= 0:
		return fmt.Errorf("delivery band_km must be positive")
	case p.FallbackKm < 0 || p.MtaaniKm < 0:
		return fmt.Errorf("delivery distances must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getDuration reads a Go duration such as "5s" or "24h". Unset means def.
func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

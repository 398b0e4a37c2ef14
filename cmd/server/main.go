// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	g "github.com/jncrafts/storefront/internal/adapters/grpc"
	"github.com/jncrafts/storefront/internal/adapters/geocoder"
	"github.com/jncrafts/storefront/internal/adapters/httpapi"
	"github.com/jncrafts/storefront/internal/adapters/httpclient"
	"github.com/jncrafts/storefront/internal/adapters/kafka"
	"github.com/jncrafts/storefront/internal/adapters/ordergateway"
	"github.com/jncrafts/storefront/internal/adapters/payment"
	"github.com/jncrafts/storefront/internal/adapters/redis"
	"github.com/jncrafts/storefront/internal/adapters/repository"
	"github.com/jncrafts/storefront/internal/application"
	"github.com/jncrafts/storefront/internal/config"
	"github.com/jncrafts/storefront/internal/logger"
	"github.com/jncrafts/storefront/internal/ports"
	"github.com/jncrafts/storefront/internal/tracing"
	"github.com/jncrafts/storefront/pkg/auth"
)

const (
	sessionIdleTimeout = 2 * time.Hour
	sweepInterval      = 10 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("storefront-checkout", "info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	auth.SetSecret(cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.ServiceName, cfg.Tracing.Endpoint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}()

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping DB")
	}
	repo := repository.NewPostgresRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate DB")
	}

	cache := redis.NewCache(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to Redis")
	}

	writer := kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)
	notifier := kafka.NewNotifier(writer)
	defer notifier.Close()

	hc := httpclient.NewClient(nil, 30*time.Second)
	geo := geocoder.NewCached(
		geocoder.NewClient(cfg.Geocoder, hc, log),
		cache.WithTTL(cfg.Geocoder.CacheTTL),
		log,
	)
	gateway := ordergateway.NewClient(cfg.Orders, hc, log)
	paystack := payment.NewPaystackClient(cfg.Paystack, hc, log)

	var providers []ports.PaymentPort
	if cfg.Mpesa.ConsumerKey != "" {
		providers = append(providers, payment.NewMpesaClient(cfg.Mpesa, hc, log))
	} else {
		log.Warn().Msg("M-Pesa credentials not set, M-Pesa payments disabled")
	}
	if cfg.Paystack.SecretKey != "" {
		providers = append(providers, paystack)
	} else {
		log.Warn().Msg("Paystack secret not set, Paystack payments disabled")
	}

	pricing := application.NewPricingEngine(cfg.Delivery, geo, log)
	sessions := application.NewSessionRegistry(pricing, log)
	authService := application.NewAuthService(repo, cache)
	orderService := application.NewOrderService(repo, cache, gateway, notifier, sessions, log)
	paymentService := application.NewPaymentService(repo, cache, notifier, log, providers...)

	go sweepSessions(ctx, sessions, log)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("failed to listen")
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(g.AuthInterceptor(authService)))
	g.RegisterCheckoutServiceServer(grpcServer, g.NewServer(authService, orderService, paymentService, sessions, log))

	router := httpapi.NewRouter(httpapi.NewHandler(paymentService, paystack, map[string]httpapi.HealthCheck{
		"postgres": db.PingContext,
		"redis":    cache.Ping,
	}, log))
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		log.Error().Err(err).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server")
	}
	grpcServer.GracefulStop()
}

func sweepSessions(ctx context.Context, sessions *application.SessionRegistry, log zerolog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(sessionIdleTimeout); n > 0 {
				log.Debug().Int("sessions", n).Msg("dropped idle checkout sessions")
			}
		}
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/peterkachezi/furniture-api/internal/app"
	"github.com/peterkachezi/furniture-api/internal/clock"
	"github.com/peterkachezi/furniture-api/internal/config"
	"github.com/peterkachezi/furniture-api/internal/sms"
	"github.com/peterkachezi/furniture-api/internal/storage/postgres"
	transporthttp "github.com/peterkachezi/furniture-api/internal/transport/http"
	"github.com/peterkachezi/furniture-api/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	config.LoadEnvFile(logger)
	cfg := config.Load(logger)

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}

	notifier := sms.NewClient(sms.Config{
		BaseURL:   cfg.SMS.BaseURL,
		Key:       cfg.SMS.Key,
		Secret:    cfg.SMS.Secret,
		ClientID:  cfg.SMS.ClientID,
		ServiceID: cfg.SMS.ServiceID,
		Timeout:   cfg.SMS.Timeout,
	}, logger.Named("sms"))

	orderRepo := postgres.NewOrderRepository(pool)
	orderSvc := app.NewOrderService(orderRepo, notifier, clock.NewSystem(), logger.Named("orders"))
	adminRepo := postgres.NewAdminRepository(pool)
	adminSvc := app.NewAdminService(adminRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/orders", transporthttp.HandlePlaceOrder(orderSvc))
	mux.Handle("/orders/pending", transporthttp.HandlePendingOrders(adminSvc))
	mux.Handle("/orders/completed", transporthttp.HandleCompletedOrders(adminSvc))
	mux.Handle("/orders/count", transporthttp.HandlePendingOrderCount(adminSvc))
	mux.Handle("/orders/", transporthttp.HandleOrderByID(orderSvc, adminSvc))
	mux.Handle("/customers/", transporthttp.HandleCustomerOrders(orderSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger.Named("http"))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", zap.String("port", cfg.Port))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

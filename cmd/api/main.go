package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/signup/internal/api"
	"example.com/signup/internal/config"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/events"
	"example.com/signup/internal/logging"
	"example.com/signup/internal/persistence/memory"
	httptransport "example.com/signup/internal/transport/http"
	"example.com/signup/internal/web"
)

func main() {
	envPath, envErr := config.LoadDotEnv()
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	switch {
	case envErr != nil:
		logger.Warn("failed to load .env", zap.String("path", envPath), zap.Error(envErr))
	case envPath != "":
		logger.Info("loaded env file", zap.String("path", envPath))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := memory.NewSeededStore(memory.WithCapacityEnforcement(cfg.EnforceCapacity))
	if err != nil {
		logger.Fatal("failed to seed activity store", zap.Error(err))
	}

	// Stopped only after the HTTP server has drained.
	eventsCtx, stopEvents := context.WithCancel(context.Background())
	defer stopEvents()

	var publisher domain.Publisher = events.NopPublisher{}
	var kafkaPublisher *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		kafkaPublisher = events.NewKafkaPublisher(writer, cfg.EventBufferSize, logger.Named("events"))
		publisher = kafkaPublisher
		go kafkaPublisher.Run(eventsCtx)
		logger.Info("registration events enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic),
		)
	}

	service := domain.NewService(store,
		domain.WithPublisher(publisher),
		domain.WithLogger(logger.Named("activities")),
	)

	mux := http.NewServeMux()
	api.NewHandler(service).RegisterRoutes(mux)
	web.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", httptransport.NotFoundHandler())

	handler := httptransport.RequestID(
		httptransport.RequestLogger(
			httptransport.CORS(cfg.CORSOrigins, mux),
			logger.Named("http"),
		),
	)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, handler)

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("signup-service listening",
			zap.String("address", cfg.HTTPAddress),
			zap.Bool("enforce_capacity", cfg.EnforceCapacity),
		)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
		stop()
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	stopEvents()
	if kafkaPublisher != nil {
		kafkaPublisher.Wait()
	}
	logger.Info("server stopped")
}

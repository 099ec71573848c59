package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexgen-pricing/internal/catalog"
	"nexgen-pricing/internal/config"
	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/domain/ports/adapter"
	"nexgen-pricing/internal/infra/logging"
	"nexgen-pricing/internal/infra/metrics"
	pay "nexgen-pricing/internal/infra/payment"
	red "nexgen-pricing/internal/infra/redis"
	"nexgen-pricing/internal/infra/web"
	"nexgen-pricing/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("developer mode enabled")
	}

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()
	prefRepo := red.NewPreferenceRepo(redisClient, cfg.Redis.TTL)

	// ---- Catalog ----
	var catOpts []catalog.Option
	if cfg.Catalog.OverridesPath != "" {
		catOpts = append(catOpts, catalog.WithOverridesFile(cfg.Catalog.OverridesPath))
	}
	cat, err := catalog.New(catOpts...)
	if err != nil {
		// Fail fast rather than serve an inconsistent price list.
		logger.Fatal().Err(err).Msg("catalog")
	}

	// ---- Payment ----
	router := pay.NewRouter(cfg.Server.Origin)
	var gateway adapter.PaymentGateway
	if key := cfg.Payment.Stripe.SecretKey; key != "" {
		gateway, err = pay.NewStripeGateway(key, cfg.Server.Origin, cfg.Payment.Stripe.Sandbox)
		if err != nil {
			logger.Fatal().Err(err).Msg("stripe gateway")
		}
	} else {
		logger.Warn().Msg("payment.stripe.secret_key not set; hosted stripe page disabled")
	}

	// ---- Use cases ----
	defaultCurrency, err := model.ParseCurrency(cfg.Region.DefaultCurrency)
	if err != nil {
		logger.Fatal().Str("currency", cfg.Region.DefaultCurrency).Msg("region.default_currency is not supported")
	}
	regionUC := usecase.NewRegionGateUseCase(prefRepo, defaultCurrency, logger)

	factory := func(visitorID string, displayCurrency model.CurrencyCode, renderer usecase.BillingRenderer) usecase.PricingEngine {
		return usecase.NewPricingEngine(cat, prefRepo, router, renderer, visitorID, displayCurrency, logger)
	}
	sessions := usecase.NewSessionManager(factory, cfg.Session.TTL, logger)
	go sessions.Run(ctx)

	// ---- HTTP ----
	metrics.MustRegister()
	srv := web.NewServer(sessions, regionUC, prefRepo, cat, gateway, cfg.Payment.Razorpay.WebhookSecret, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Str("origin", cfg.Server.Origin).Msg("http server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server")
		}
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	cancel()
	logger.Info().Msg("bye")
}

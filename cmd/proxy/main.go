package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marell/syndimarket/internal/aggregate"
	"github.com/marell/syndimarket/internal/config"
	"github.com/marell/syndimarket/internal/dispatch"
	"github.com/marell/syndimarket/internal/market"
	"github.com/marell/syndimarket/internal/scheduler"
	"github.com/marell/syndimarket/internal/server"
	"github.com/marell/syndimarket/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/proxy.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting proxy",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"upstream", cfg.Upstream.BaseURL,
		"request_gap", cfg.Upstream.RequestGap,
		"catalogue_items", len(cfg.Catalogue.Items),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Single dispatcher: every upstream request funnels through it
	disp := dispatch.New(cfg.Upstream.RequestGap)

	// Upstream client
	clientOpts := []market.ClientOption{
		market.WithLogger(logger),
		market.WithTimeout(cfg.Upstream.Timeout),
		market.WithRetries(cfg.Upstream.MaxRetries, cfg.Upstream.RetryDelay),
		market.WithRetryJitter(cfg.Upstream.RetryJitter),
	}
	if len(cfg.Upstream.UserAgents) > 0 {
		clientOpts = append(clientOpts, market.WithUserAgents(cfg.Upstream.UserAgents))
	}
	client := market.NewClient(cfg.Upstream.BaseURL, disp, clientOpts...)

	// Aggregator with its two cache layers
	agg := aggregate.New(aggregate.Config{
		DataTTL:      cfg.Cache.DataTTL,
		CatalogueTTL: cfg.Cache.CatalogueTTL,
		BatchSize:    cfg.Aggregate.BatchSize,
		Items:        cfg.Catalogue.Items,
	}, client, logger)

	// Optional catalogue prewarm
	sched := scheduler.New(agg, logger)
	if err := sched.RegisterPrewarm(cfg.Catalogue.PrewarmCron); err != nil {
		logger.Error("failed to register prewarm job", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	// HTTP surface
	srv := server.New(server.Config{
		Addr:        cfg.Server.Addr,
		ClientRPS:   cfg.Server.ClientRPS,
		ClientBurst: cfg.Server.ClientBurst,
	}, agg, disp, logger)

	httpServer := &http.Server{
		Addr:    srv.Addr(),
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("proxy stopped")
}

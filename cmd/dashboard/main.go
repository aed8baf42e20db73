package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dashboard"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/warehouse"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/pkg/logging"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/pkg/shutdown"
)

func main() {
	log := logging.New()

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration
	httpAddr := env("HTTP_ADDR", ":8080")
	dataDir := env("DATA_DIR", "data")
	redisAddr := os.Getenv("REDIS_ADDR")

	// Prefer the warehouse; degrade to the local csv artifacts when it is
	// unreachable or unconfigured.
	provider := newProvider(ctx, log, dataDir)
	log.Info("dashboard source selected", "mode", provider.Mode())

	// Optional view cache
	var cache *dashboard.Cache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		cache = dashboard.NewCache(rdb, 5*time.Minute)
	}

	handler := dashboard.NewHandler(log, provider, cache)

	// HTTP server
	r := chi.NewRouter()
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("dashboard shutdown complete")
}

// newProvider connects to the warehouse when credentials are present and it
// answers a ping; otherwise it falls back to the local artifacts.
func newProvider(ctx context.Context, log *slog.Logger, dataDir string) dashboard.Provider {
	cfg, err := warehouse.ConfigFromEnv()
	if err != nil {
		log.Warn("warehouse unavailable, using local files", "reason", err)
		return dashboard.NewLocalProvider(log, dataDir)
	}
	db, err := cfg.Open()
	if err == nil {
		pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
		defer pingCancel()
		err = db.PingContext(pingCtx)
	}
	if err != nil {
		log.Warn("warehouse unavailable, using local files", "reason", err)
		return dashboard.NewLocalProvider(log, dataDir)
	}
	return dashboard.NewWarehouseProvider(log, db)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

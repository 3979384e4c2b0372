package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"

	"github.com/samirrijal/placesbridge/internal/adapters/channel"
	"github.com/samirrijal/placesbridge/internal/adapters/googleplaces"
	"github.com/samirrijal/placesbridge/internal/adapters/http"
	natsadapter "github.com/samirrijal/placesbridge/internal/adapters/nats"
	"github.com/samirrijal/placesbridge/internal/adapters/postgres"
	"github.com/samirrijal/placesbridge/internal/adapters/valkey"
	"github.com/samirrijal/placesbridge/internal/core/usecases"
	"github.com/samirrijal/placesbridge/internal/pkg/config"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
	"github.com/samirrijal/placesbridge/internal/pkg/metrics"
	"github.com/samirrijal/placesbridge/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("placesbridge-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logging.Setup(cfg.Telemetry.ServiceName, cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}
	if cfg.Places.APIKey == "" {
		slog.Warn("places api key is empty; vendor calls will be denied")
	}

	// Backing services are optional: connect concurrently and degrade.
	var (
		db    *postgres.DB
		cache *valkey.Cache
		nc    *nats.Conn
	)
	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	g, gctx := errgroup.WithContext(connectCtx)
	g.Go(func() error {
		d, err := postgres.New(gctx, cfg.Database.DSN())
		if err != nil {
			slog.Warn("database unavailable, request log disabled", "error", err)
			return nil
		}
		db = d
		return nil
	})
	g.Go(func() error {
		if cfg.Places.CacheTTL <= 0 {
			return nil
		}
		c, err := valkey.New(cfg.Valkey.Addr, "placesbridge:")
		if err != nil {
			slog.Warn("valkey unavailable, prediction cache disabled", "error", err)
			return nil
		}
		cache = c
		return nil
	})
	g.Go(func() error {
		c, err := natsadapter.Connect(cfg.NATS.URL, cfg.Telemetry.ServiceName)
		if err != nil {
			slog.Warn("nats unavailable", "error", err)
			return nil
		}
		nc = c
		return nil
	})
	_ = g.Wait()
	connectCancel()

	sessions := usecases.NewSessionManager(cfg.Places.SessionTTL)

	var (
		requestLog *usecases.RequestLogService
		logRepo    *postgres.RequestLogRepo
		publisher  *natsadapter.Publisher
	)
	if db != nil {
		defer db.Close()
		logRepo = postgres.NewRequestLogRepo(db)
		requestLog = usecases.NewRequestLogService(logRepo)
		go reportPoolStats(ctx, db)
	}
	if cache != nil {
		defer cache.Close()
	}
	if nc != nil {
		defer func() { _ = nc.Drain() }()
		if publisher, err = natsadapter.NewPublisher(nc); err != nil {
			slog.Warn("jetstream unavailable, completion events disabled", "error", err)
		}
	}

	factory := func(apiKey string) (channel.Finder, error) {
		client := googleplaces.NewClient(googleplaces.Options{
			APIKey:    apiKey,
			BaseURL:   cfg.Places.BaseURL,
			Timeout:   cfg.Places.Timeout,
			RateLimit: cfg.Places.RateLimit,
		})
		svc := usecases.NewAutocompleteService(client, sessions)
		if cache != nil {
			svc.WithCache(cache, cfg.Places.CacheTTL)
		}
		if logRepo != nil {
			svc.WithRequestLog(logRepo)
		}
		if publisher != nil {
			svc.WithEvents(publisher)
		}
		slog.Info("places client initialised", "base_url", cfg.Places.BaseURL)
		return svc, nil
	}

	rest, ws, gql := channel.NewSlot("rest"), channel.NewSlot("websocket"), channel.NewSlot("graphql")
	registrars := []channel.Registrar{rest, ws, gql}
	if nc != nil {
		registrars = append(registrars, natsadapter.NewRegistrar(nc, cfg.NATS.Subject, cfg.NATS.QueueGroup, cfg.Places.Timeout))
	}

	plugin := channel.NewPlugin(channel.Host{APIKey: cfg.Places.APIKey}, factory, registrars...)
	if err := plugin.Attach(ctx); err != nil {
		log.Fatalf("attach: %v", err)
	}

	deps := &http.Dependencies{
		REST:           rest,
		WebSocket:      ws,
		GraphQL:        gql,
		Plugin:         plugin,
		Sessions:       sessions,
		RequestLog:     requestLog,
		NATS:           nc,
		RequestTimeout: cfg.Places.Timeout + 5*time.Second,
	}
	if db != nil {
		deps.DB = db
	}
	if cache != nil {
		deps.Cache = cache
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    64 * 1024,
		AppName:      "placesbridge API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	if err := plugin.Detach(); err != nil {
		slog.Warn("detach", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

func reportPoolStats(ctx context.Context, db *postgres.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			metrics.UpdateDBPoolMetrics(db.Stat())
		case <-ctx.Done():
			return
		}
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kirinyoku/gigbook/internal/config"
	"github.com/kirinyoku/gigbook/internal/metric"
	"github.com/kirinyoku/gigbook/internal/postgres"
	"github.com/kirinyoku/gigbook/internal/redis"
	postgresrepo "github.com/kirinyoku/gigbook/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/gigbook/internal/repository/redis"
	"github.com/kirinyoku/gigbook/internal/service"
	httpgin "github.com/kirinyoku/gigbook/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *postgresrepo.Store
	cache      *redisrepo.Cache
	pubsub     *redisrepo.BookingsPubSub
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redis.New(context.Background(), redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	if err := store.CreateSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if cfg.SeedDemo {
		if err := store.SeedDemoData(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewBookingsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "writes", 10, 1*time.Minute)

	// Initialize services
	services := service.NewServices(store, cache, pubsub, service.Config{})

	// Initialize Gin router
	router := httpgin.NewRouter(services, limiter, logger, metric.HTTPMiddleware())

	return &App{
		cfg:    cfg,
		logger: logger,
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Drop cached pages when another instance commits a booking write.
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, msg redisrepo.ChangedMsg) {
			switch msg.Entity {
			case "venue":
				_ = a.cache.InvalidateVenue(ctx, msg.ID)
			case "artist":
				_ = a.cache.InvalidateArtist(ctx, msg.ID)
			case "show":
				_ = a.cache.Del(ctx, redisrepo.KeyShowsBoard())
			}
		})
		if err != nil && gCtx.Err() == nil {
			return fmt.Errorf("pubsub subscription failed: %w", err)
		}
		return nil
	})

	// Sample database ping latency for /metrics.
	g.Go(func() error {
		metric.WatchDBPing(gCtx, a.store, 30*time.Second, a.logger)
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}

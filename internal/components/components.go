package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/handlers/http/system"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/config"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/redis"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/storage/firebase"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/storage/memory"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/storage/postgres"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/workers"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/logger"
)

// zoneStore is the remote tree plus the liveness check used by /health.
type zoneStore interface {
	service.Store
	Ping(ctx context.Context) error
}

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	EventQueue  *redis.EventQueue
	EventSender *service.EventSender
	CacheWarmer *workers.CacheWarmer
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	store, err := newStore(cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	// audit is left as a nil interface when disabled so the services skip it
	var audit service.AuditRepository
	if !cfg.Postgres.Disabled {
		logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		audit = pg.Audit
	} else {
		logger.Warn("Audit trail disabled")
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Redis = redisClient

	zoneCache := redis.NewZoneCache(redisClient)
	sessions := redis.NewSessionStore(redisClient)
	c.EventQueue = redis.NewEventQueue(redisClient.Client, redis.EventQueueKey)

	center := domain.Coordinates{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon}
	zones := service.NewZoneRepository(store, logger, center)
	coordinators := service.NewCoordinatorDirectory(store, logger)
	stats := service.NewStats(zones, audit, logger)

	opts := service.Options{
		Cache:    zoneCache,
		CacheTTL: cfg.Redis.ZoneCacheTTL,
		Audit:    audit,
	}
	if !cfg.Webhook.Disabled {
		opts.Events = c.EventQueue
		c.EventSender = service.NewEventSender(logger, cfg.Webhook, c.EventQueue)
	}
	if cfg.Redis.WarmInterval > 0 {
		c.CacheWarmer = workers.NewCacheWarmer(zones, zoneCache, cfg.Redis.ZoneCacheTTL, cfg.Redis.WarmInterval, logger)
	}

	svc := service.NewService(zones, coordinators, stats, opts, logger)
	auth := service.NewAuthService(coordinators, sessions, audit, cfg.Admin, cfg.Session.TTL, logger)

	checks := map[string]system.Pinger{
		"store": store,
		"redis": redisClient,
	}
	if c.Postgres != nil {
		checks["audit"] = c.Postgres
	}

	c.HttpServer = api.NewServer(ctx, cfg, logger, svc, auth, checks)
	logger.Info("Initialized server")

	return c, nil
}

func newStore(cfg config.StoreConfig, logger *slog.Logger) (zoneStore, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory zone store, data is lost on restart")
		return memory.New(), nil
	default:
		logger.Info("Initializing remote store", slog.String("url", cfg.URL))
		client, err := firebase.NewClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init store client: %w", err)
		}
		return client, nil
	}
}

// RunBackground starts the optional workers. They stop when ctx is done;
// wg tracks them for shutdown.
func (c *Components) RunBackground(ctx context.Context, wg *sync.WaitGroup) {
	if c.EventSender != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.EventSender.Run(ctx)
		}()
	}
	if c.CacheWarmer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.CacheWarmer.Run(ctx)
		}()
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
)

//go:generate mockgen -source=cache_warmer.go -destination=mocks/mock.go
type ZoneLister interface {
	List(ctx context.Context) ([]domain.Zone, error)
}

type ZoneCacheWriter interface {
	Set(ctx context.Context, zones []domain.Zone, ttl time.Duration) error
}

// CacheWarmer refreshes the volunteer zone view before its lease runs out,
// so the public map rarely waits on the remote store. A refresh racing a
// mutation can publish the older view until the next tick.
type CacheWarmer struct {
	zones    ZoneLister
	cache    ZoneCacheWriter
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewCacheWarmer(zones ZoneLister, cache ZoneCacheWriter, ttl, interval time.Duration, logger *slog.Logger) *CacheWarmer {
	return &CacheWarmer{
		zones:    zones,
		cache:    cache,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Run warms the cache once, then on every tick until ctx is done.
func (w *CacheWarmer) Run(ctx context.Context) {
	w.logger.Info("cache warmer started", slog.Duration("interval", w.interval))
	defer w.logger.Info("cache warmer stopped")

	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmer) warm(ctx context.Context) bool {
	const op = "workers.CacheWarmer.warm"

	zones, err := w.zones.List(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("zone list failed", slog.String("op", op), slog.Any("error", err))
		}
		return false
	}

	if err := w.cache.Set(ctx, zones, w.ttl); err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("zone cache write failed", slog.String("op", op), slog.Any("error", err))
		}
		return false
	}

	w.logger.Debug("zone cache warmed", slog.Int("zones", len(zones)))
	return true
}

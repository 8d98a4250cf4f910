package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

type Stats struct {
	zones  ZoneManager
	audit  AuditRepository
	logger *slog.Logger
}

func NewStats(zones ZoneManager, audit AuditRepository, logger *slog.Logger) *Stats {
	return &Stats{zones: zones, audit: audit, logger: logger}
}

// GetStats reads the zone collection and the audit tally concurrently. The
// audit side is optional: without a repository only zone figures are set.
func (s *Stats) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AdminStats, error) {
	const op = "service.Stats.GetStats"

	if req.Minutes <= 0 {
		return nil, fmt.Errorf("%s: minutes must be positive: %w", op, e.ErrInvalidInput)
	}

	var (
		zones  []domain.Zone
		counts []domain.AuditCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		zones, err = s.zones.List(gctx)
		return err
	})
	if s.audit != nil {
		g.Go(func() error {
			var err error
			counts, err = s.audit.CountSince(gctx, req.Minutes)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("stats failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	stats := &domain.AdminStats{
		Zones:          domain.Summarize(zones),
		Minutes:        req.Minutes,
		MutationsByKey: map[string]int64{},
	}
	for _, c := range counts {
		switch c.Action {
		case domain.AuditLoginFailed:
			stats.FailedLogins += c.Count
		case domain.AuditLoginSucceeded:
		default:
			if c.Success {
				stats.Mutations += c.Count
				stats.MutationsByKey[c.Action] += c.Count
			}
		}
	}
	return stats, nil
}

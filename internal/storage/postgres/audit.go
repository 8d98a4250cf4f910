package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

type AuditRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAuditRepo(pool *pgxpool.Pool, logger *slog.Logger) *AuditRepo {
	return &AuditRepo{pool: pool, logger: logger}
}

func (p *AuditRepo) Save(ctx context.Context, ev *domain.AuditEvent) error {
	const op = "postgres.Audit.Save"

	if ev == nil || ev.Action == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO audit_events (id, action, actor, role, target, success, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.Action,
		ev.Actor,
		string(ev.Role),
		ev.Target,
		ev.Success,
		ev.Reason,
		ev.OccurredAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// CountSince tallies events of the last minutes per action and outcome.
func (p *AuditRepo) CountSince(ctx context.Context, minutes int) ([]domain.AuditCount, error) {
	const op = "postgres.Audit.CountSince"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT action, success, COUNT(*)
		FROM audit_events
		WHERE occurred_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY action, success
		ORDER BY action, success
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.Int("minutes", minutes))
		return nil, e.WrapError(ctx, op, err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditCount, error) {
		var c domain.AuditCount
		err := row.Scan(&c.Action, &c.Success, &c.Count)
		return c, err
	})
	if err != nil {
		p.logger.Error("db scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return counts, nil
}

// Recent returns the newest events first, for the admin trail view.
func (p *AuditRepo) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	const op = "postgres.Audit.Recent"

	if limit <= 0 || limit > 500 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT id, action, actor, role, target, success, reason, occurred_at
		FROM audit_events
		ORDER BY occurred_at DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEvent, error) {
		var (
			ev   domain.AuditEvent
			role string
		)
		err := row.Scan(&ev.ID, &ev.Action, &ev.Actor, &role, &ev.Target, &ev.Success, &ev.Reason, &ev.OccurredAt)
		ev.Role = domain.Role(role)
		return ev, err
	})
	if err != nil {
		p.logger.Error("db scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return events, nil
}

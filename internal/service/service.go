package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
)

// Store is the remote JSON tree. It offers no transactions and no
// compare-and-swap; concurrent writers race and the last response wins.
//
//go:generate mockgen -source=service.go -destination=mocks/mock.go
type Store interface {
	// Get returns nil for an absent or null path.
	Get(ctx context.Context, path string) (json.RawMessage, error)
	// Put replaces the subtree; a nil value deletes it.
	Put(ctx context.Context, path string, value any) error
	// Patch merges the top level fields of value at path.
	Patch(ctx context.Context, path string, value any) error
	Delete(ctx context.Context, path string) error
}

type ZoneManager interface {
	List(ctx context.Context) ([]domain.Zone, error)
	Get(ctx context.Context, id string) (*domain.Zone, error)
	Create(ctx context.Context, req domain.CreateZoneRequest) (*domain.Zone, error)
	Update(ctx context.Context, id string, req domain.UpdateZoneRequest) (*domain.ZoneUpdate, error)
	Edit(ctx context.Context, id string, req domain.EditZoneRequest) error
	Delete(ctx context.Context, id string) error
	Restructure(ctx context.Context) (int, error)
}

type CoordinatorManager interface {
	Add(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (*domain.Coordinator, error)
	Deactivate(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]domain.Coordinator, error)
}

// ZoneCache holds the volunteer view of the zone collection for a short lease.
type ZoneCache interface {
	Get(ctx context.Context) ([]domain.Zone, error)
	Set(ctx context.Context, zones []domain.Zone, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type SessionStore interface {
	Save(ctx context.Context, sess domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type AuditRepository interface {
	Save(ctx context.Context, event *domain.AuditEvent) error
	CountSince(ctx context.Context, minutes int) ([]domain.AuditCount, error)
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

type EventQueue interface {
	Enqueue(ctx context.Context, event domain.ZoneStatusChanged) error
}

// EventSource blocks up to timeout for the next queued event and returns
// e.ErrEventQueueEmpty when none arrived.
type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.ZoneStatusChanged, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AdminStats, error)
}

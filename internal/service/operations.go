package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

// Service is the entry point used by the HTTP layer. Every method takes the
// caller's session explicitly and checks its permissions before touching
// the store.
type Service struct {
	Zones        ZoneManager
	Coordinators CoordinatorManager
	Stats        StatsService

	cache    ZoneCache
	audit    AuditRepository
	events   EventQueue
	cacheTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// Options carries the optional collaborators. Nil members disable the
// feature they back.
type Options struct {
	Cache    ZoneCache
	CacheTTL time.Duration
	Audit    AuditRepository
	Events   EventQueue
}

func NewService(zones ZoneManager, coordinators CoordinatorManager, stats StatsService, opts Options, logger *slog.Logger) *Service {
	return &Service{
		Zones:        zones,
		Coordinators: coordinators,
		Stats:        stats,
		cache:        opts.Cache,
		audit:        opts.Audit,
		events:       opts.Events,
		cacheTTL:     opts.CacheTTL,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func authorize(op string, sess domain.Session, action domain.Action) error {
	if !sess.Can(action) {
		return fmt.Errorf("%s: role %s cannot %s: %w", op, sess.Role, action, e.ErrForbidden)
	}
	return nil
}

// ListZones serves volunteers from the cached view. Roles that can see the
// details always read the store so they never edit from a stale snapshot.
func (s *Service) ListZones(ctx context.Context, sess domain.Session) ([]domain.Zone, error) {
	const op = "service.ListZones"

	if err := authorize(op, sess, domain.ActionViewZones); err != nil {
		return nil, err
	}
	if sess.Can(domain.ActionViewZoneDetails) || s.cache == nil {
		return s.Zones.List(ctx)
	}

	cached, err := s.cache.Get(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil {
		s.logger.Warn("zone cache read failed", slog.Any("error", err))
	}

	zones, err := s.Zones.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, zones, s.cacheTTL); err != nil {
		s.logger.Warn("zone cache write failed", slog.Any("error", err))
	}
	return zones, nil
}

func (s *Service) GetZone(ctx context.Context, sess domain.Session, id string) (*domain.Zone, error) {
	const op = "service.GetZone"

	if err := authorize(op, sess, domain.ActionViewZoneDetails); err != nil {
		return nil, err
	}
	return s.Zones.Get(ctx, id)
}

func (s *Service) Summary(ctx context.Context, sess domain.Session) (domain.ZoneSummary, error) {
	zones, err := s.ListZones(ctx, sess)
	if err != nil {
		return domain.ZoneSummary{}, err
	}
	return domain.Summarize(zones), nil
}

func (s *Service) CreateZone(ctx context.Context, sess domain.Session, req domain.CreateZoneRequest) (*domain.Zone, error) {
	const op = "service.CreateZone"

	if err := authorize(op, sess, domain.ActionManageZones); err != nil {
		return nil, err
	}
	z, err := s.Zones.Create(ctx, req)
	target := req.Name
	if z != nil {
		target = z.ID
	}
	s.mutated(ctx, sess, domain.AuditZoneCreated, target, err)
	return z, err
}

// UpdateZone applies a coordinator edit and queues a notification when the
// zone lands in a different status.
func (s *Service) UpdateZone(ctx context.Context, sess domain.Session, id string, req domain.UpdateZoneRequest) (*domain.Zone, error) {
	const op = "service.UpdateZone"

	if err := authorize(op, sess, domain.ActionUpdateZone); err != nil {
		return nil, err
	}
	upd, err := s.Zones.Update(ctx, id, req)
	s.mutated(ctx, sess, domain.AuditZoneUpdated, id, err)
	if err != nil {
		return nil, err
	}

	if upd.StatusChanged() && s.events != nil {
		ev := domain.ZoneStatusChanged{
			ZoneID:         upd.Zone.ID,
			ZoneName:       upd.Zone.Name,
			PreviousStatus: upd.PreviousStatus,
			Status:         upd.Zone.Status,
			VolunteerCount: upd.Zone.VolunteerCount,
			ChangedBy:      sess.Actor(),
			ChangedAt:      s.now(),
		}
		if err := s.events.Enqueue(ctx, ev); err != nil {
			s.logger.Error("enqueue status change failed", slog.String("zone_id", ev.ZoneID), slog.Any("error", err))
		} else {
			s.logger.Info("status change enqueued",
				slog.String("zone_id", ev.ZoneID),
				slog.String("from", string(ev.PreviousStatus)),
				slog.String("to", string(ev.Status)),
			)
		}
	}
	return &upd.Zone, nil
}

func (s *Service) EditZone(ctx context.Context, sess domain.Session, id string, req domain.EditZoneRequest) error {
	const op = "service.EditZone"

	if err := authorize(op, sess, domain.ActionManageZones); err != nil {
		return err
	}
	err := s.Zones.Edit(ctx, id, req)
	s.mutated(ctx, sess, domain.AuditZoneEdited, id, err)
	return err
}

func (s *Service) DeleteZone(ctx context.Context, sess domain.Session, id string) error {
	const op = "service.DeleteZone"

	if err := authorize(op, sess, domain.ActionManageZones); err != nil {
		return err
	}
	err := s.Zones.Delete(ctx, id)
	s.mutated(ctx, sess, domain.AuditZoneDeleted, id, err)
	return err
}

func (s *Service) Restructure(ctx context.Context, sess domain.Session) (int, error) {
	const op = "service.Restructure"

	if err := authorize(op, sess, domain.ActionMaintenance); err != nil {
		return 0, err
	}
	n, err := s.Zones.Restructure(ctx)
	s.mutated(ctx, sess, domain.AuditZonesRestructured, "zones", err)
	return n, err
}

func (s *Service) ListCoordinators(ctx context.Context, sess domain.Session) ([]domain.Coordinator, error) {
	const op = "service.ListCoordinators"

	if err := authorize(op, sess, domain.ActionManageCoordinator); err != nil {
		return nil, err
	}
	return s.Coordinators.List(ctx)
}

func (s *Service) AddCoordinator(ctx context.Context, sess domain.Session, req domain.AddCoordinatorRequest) error {
	const op = "service.AddCoordinator"

	if err := authorize(op, sess, domain.ActionManageCoordinator); err != nil {
		return err
	}
	err := s.Coordinators.Add(ctx, req.Username, req.Password)
	s.record(ctx, sess, domain.AuditCoordinatorAdded, req.Username, err)
	return err
}

func (s *Service) DeactivateCoordinator(ctx context.Context, sess domain.Session, username string) error {
	const op = "service.DeactivateCoordinator"

	if err := authorize(op, sess, domain.ActionManageCoordinator); err != nil {
		return err
	}
	err := s.Coordinators.Deactivate(ctx, username)
	s.record(ctx, sess, domain.AuditCoordinatorDisabled, username, err)
	return err
}

func (s *Service) DeleteCoordinator(ctx context.Context, sess domain.Session, username string) error {
	const op = "service.DeleteCoordinator"

	if err := authorize(op, sess, domain.ActionManageCoordinator); err != nil {
		return err
	}
	err := s.Coordinators.Delete(ctx, username)
	s.record(ctx, sess, domain.AuditCoordinatorDeleted, username, err)
	return err
}

func (s *Service) GetStats(ctx context.Context, sess domain.Session, req domain.StatsRequest) (*domain.AdminStats, error) {
	const op = "service.GetStats"

	if err := authorize(op, sess, domain.ActionViewStats); err != nil {
		return nil, err
	}
	return s.Stats.GetStats(ctx, req)
}

// mutated drops the volunteer view after a successful zone write and
// records the outcome either way.
func (s *Service) mutated(ctx context.Context, sess domain.Session, action, target string, err error) {
	if err == nil && s.cache != nil {
		if cerr := s.cache.Invalidate(ctx); cerr != nil {
			s.logger.Warn("zone cache invalidate failed", slog.Any("error", cerr))
		}
	}
	s.record(ctx, sess, action, target, err)
}

func (s *Service) record(ctx context.Context, sess domain.Session, action, target string, err error) {
	ev := &domain.AuditEvent{
		ID:         uuid.New(),
		Action:     action,
		Actor:      sess.Actor(),
		Role:       sess.Role,
		Target:     target,
		Success:    err == nil,
		OccurredAt: s.now(),
	}
	if err != nil {
		ev.Reason = err.Error()
	}
	recordAudit(ctx, s.audit, s.logger, ev)
}

// RecentAudit returns the newest audit events. Without an audit store the
// trail is empty.
func (s *Service) RecentAudit(ctx context.Context, sess domain.Session, limit int) ([]domain.AuditEvent, error) {
	const op = "service.RecentAudit"

	if err := authorize(op, sess, domain.ActionViewStats); err != nil {
		return nil, err
	}
	if s.audit == nil {
		return []domain.AuditEvent{}, nil
	}
	events, err := s.audit.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return events, nil
}

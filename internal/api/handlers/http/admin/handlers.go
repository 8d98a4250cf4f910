package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/middleware"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneAdmin interface {
	ListZones(ctx context.Context, sess domain.Session) ([]domain.Zone, error)
	CreateZone(ctx context.Context, sess domain.Session, req domain.CreateZoneRequest) (*domain.Zone, error)
	EditZone(ctx context.Context, sess domain.Session, id string, req domain.EditZoneRequest) error
	DeleteZone(ctx context.Context, sess domain.Session, id string) error
	Restructure(ctx context.Context, sess domain.Session) (int, error)
}

type CoordinatorAdmin interface {
	ListCoordinators(ctx context.Context, sess domain.Session) ([]domain.Coordinator, error)
	AddCoordinator(ctx context.Context, sess domain.Session, req domain.AddCoordinatorRequest) error
	DeactivateCoordinator(ctx context.Context, sess domain.Session, username string) error
	DeleteCoordinator(ctx context.Context, sess domain.Session, username string) error
}

type Reports interface {
	GetStats(ctx context.Context, sess domain.Session, req domain.StatsRequest) (*domain.AdminStats, error)
	RecentAudit(ctx context.Context, sess domain.Session, limit int) ([]domain.AuditEvent, error)
}

type Handler struct {
	logger       *slog.Logger
	Zones        ZoneAdmin
	Coordinators CoordinatorAdmin
	Reports      Reports
}

func NewHandler(logger *slog.Logger, zones ZoneAdmin, coordinators CoordinatorAdmin, reports Reports) *Handler {
	return &Handler{
		logger:       logger,
		Zones:        zones,
		Coordinators: coordinators,
		Reports:      reports,
	}
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.ListZones(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("zones listed", slog.Int("count", len(zones)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": toZoneViews(zones),
		"total": len(zones),
	})
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateZoneRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	zone, err := h.Zones.CreateZone(r.Context(), middleware.SessionFrom(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone created", slog.String("id", zone.ID), slog.String("name", zone.Name))
	h.writeJSON(w, http.StatusCreated, toZoneView(*zone))
}

func (h *Handler) ZoneEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.EditZoneRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Empty() {
		h.handleError(w, r, fmt.Errorf("nothing to edit: %w", e.ErrInvalidInput))
		return
	}

	if err := h.Zones.EditZone(r.Context(), middleware.SessionFrom(r.Context()), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("zone edited", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ZoneDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Zones.DeleteZone(r.Context(), middleware.SessionFrom(r.Context()), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("zone deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// Restructure rewrites a legacy array-shaped zone collection as a keyed map.
func (h *Handler) Restructure(w http.ResponseWriter, r *http.Request) {
	n, err := h.Zones.Restructure(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("zones restructured", slog.Int("zones", n))
	h.writeJSON(w, http.StatusOK, map[string]int{"zones": n})
}

func (h *Handler) CoordinatorList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Coordinators.ListCoordinators(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"coordinators": toCoordinatorViews(list),
		"total":        len(list),
	})
}

func (h *Handler) CoordinatorAdd(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AddCoordinatorRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Coordinators.AddCoordinator(r.Context(), middleware.SessionFrom(r.Context()), req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("coordinator added", slog.String("username", req.Username))
	h.writeJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

func (h *Handler) CoordinatorDeactivate(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.Coordinators.DeactivateCoordinator(r.Context(), middleware.SessionFrom(r.Context()), username); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("coordinator deactivated", slog.String("username", username))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CoordinatorDelete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.Coordinators.DeleteCoordinator(r.Context(), middleware.SessionFrom(r.Context()), username); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("coordinator deleted", slog.String("username", username))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Stats", slog.String("query", r.URL.RawQuery))

	minutes := parseInt(r.URL.Query().Get("minutes"), 60)
	if minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.Int("minutes", minutes))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Reports.GetStats(r.Context(), middleware.SessionFrom(r.Context()), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > maxAuditLimit {
		limit = maxAuditLimit
		l.Warn("limit capped", slog.Int("limit", limit))
	}
	if limit <= 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be positive"})
		return
	}

	events, err := h.Reports.RecentAudit(r.Context(), middleware.SessionFrom(r.Context()), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"limit":  limit,
	})
}

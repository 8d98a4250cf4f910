package coordinator

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
type ZoneUpdater interface {
	ListZones(ctx context.Context, sess domain.Session) ([]domain.Zone, error)
	GetZone(ctx context.Context, sess domain.Session, id string) (*domain.Zone, error)
	UpdateZone(ctx context.Context, sess domain.Session, id string, req domain.UpdateZoneRequest) (*domain.Zone, error)
}

type Handler struct {
	logger *slog.Logger
	Zones  ZoneUpdater
}

func NewHandler(logger *slog.Logger, zones ZoneUpdater) *Handler {
	return &Handler{logger: logger, Zones: zones}
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.ListZones(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("zones listed", slog.Int("count", len(zones)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": toZoneViews(zones),
		"total": len(zones),
	})
}

func (h *Handler) ZoneGet(w http.ResponseWriter, r *http.Request) {
	zone, err := h.Zones.GetZone(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toZoneView(*zone))
}

// ZoneUpdate applies a partial edit of the count, notes and needs. Fields
// left out of the body keep their stored values.
func (h *Handler) ZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")

	var req domain.UpdateZoneRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Empty() {
		h.handleError(w, r, fmt.Errorf("nothing to update: %w", e.ErrInvalidInput))
		return
	}

	sess := middleware.SessionFrom(r.Context())
	zone, err := h.Zones.UpdateZone(r.Context(), sess, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone updated",
		slog.String("id", zone.ID),
		slog.String("by", sess.Actor()),
		slog.Int("volunteers", zone.VolunteerCount),
		slog.String("status", string(zone.Status)),
	)
	h.writeJSON(w, http.StatusOK, toZoneView(*zone))
}

package public

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	geojson "github.com/paulmach/go.geojson"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/middleware"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneViewer interface {
	ListZones(ctx context.Context, sess domain.Session) ([]domain.Zone, error)
	Summary(ctx context.Context, sess domain.Session) (domain.ZoneSummary, error)
}

type Authenticator interface {
	AdminLogin(ctx context.Context, req domain.AdminLoginRequest) (*domain.Session, error)
	CoordinatorLogin(ctx context.Context, req domain.CoordinatorLoginRequest) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	logger *slog.Logger
	Zones  ZoneViewer
	Auth   Authenticator
	center domain.Coordinates
}

func NewHandler(logger *slog.Logger, zones ZoneViewer, auth Authenticator, center domain.Coordinates) *Handler {
	return &Handler{
		logger: logger,
		Zones:  zones,
		Auth:   auth,
		center: center,
	}
}

// ZoneList serves the volunteer view of every zone.
func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	zones, err := h.Zones.ListZones(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("zones listed", slog.Int("count", len(zones)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": toVolunteerZones(zones),
		"total": len(zones),
	})
}

// ZoneMap renders the zones as a GeoJSON feature collection of coloured
// points, plus the map centre clients should open on.
func (h *Handler) ZoneMap(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.ListZones(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	fc := geojson.NewFeatureCollection()
	for _, z := range zones {
		f := geojson.NewPointFeature([]float64{z.Longitude, z.Latitude})
		f.ID = z.ID
		f.SetProperty("name", z.Name)
		f.SetProperty("status", string(z.Status))
		f.SetProperty("color", z.Status.Color())
		f.SetProperty("access_notes", z.AccessNotes)
		f.SetProperty("pending_needs", z.PendingNeeds)
		f.SetProperty("last_update", z.LastUpdate)
		fc.AddFeature(f)
	}

	h.writeJSON(w, http.StatusOK, mapFeed{
		Type:     "FeatureCollection",
		Center:   h.center,
		Features: fc.Features,
	})
}

func (h *Handler) ZoneSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Zones.Summary(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) Needs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{"needs": domain.CommonNeeds})
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AdminLoginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		l.Warn("invalid login body", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	sess, err := h.Auth.AdminLogin(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("administrator logged in")
	h.writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) CoordinatorLogin(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CoordinatorLoginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		l.Warn("invalid login body", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	sess, err := h.Auth.CoordinatorLogin(r.Context(), req)
	if err != nil {
		// an unknown username is a failed login, not a missing resource
		if errors.Is(err, e.ErrNotFound) {
			l.Info("login for unknown coordinator", slog.String("username", req.Username))
			h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "user not found"})
			return
		}
		h.handleError(w, r, err)
		return
	}

	l.Info("coordinator logged in", slog.String("username", sess.Username))
	h.writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), middleware.BearerToken(r)); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

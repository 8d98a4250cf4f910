package public

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	geojson "github.com/paulmach/go.geojson"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/respond"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
)

// volunteerZone omits the volunteer count and the covered needs.
type volunteerZone struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Status       domain.ZoneStatus `json:"status"`
	Color        string            `json:"color"`
	AccessNotes  string            `json:"access_notes"`
	PendingNeeds []string          `json:"pending_needs"`
	LastUpdate   string            `json:"last_update"`
}

func toVolunteerZones(zones []domain.Zone) []volunteerZone {
	out := make([]volunteerZone, 0, len(zones))
	for _, z := range zones {
		pending := z.PendingNeeds
		if pending == nil {
			pending = []string{}
		}
		out = append(out, volunteerZone{
			ID:           z.ID,
			Name:         z.Name,
			Latitude:     z.Latitude,
			Longitude:    z.Longitude,
			Status:       z.Status,
			Color:        z.Status.Color(),
			AccessNotes:  z.AccessNotes,
			PendingNeeds: pending,
			LastUpdate:   z.LastUpdate,
		})
	}
	return out
}

type mapFeed struct {
	Type     string             `json:"type"`
	Center   domain.Coordinates `json:"center"`
	Features []*geojson.Feature `json:"features"`
}

type sessionResponse struct {
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	Username  string      `json:"username"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		Role:      s.Role,
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt,
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code, _ := respond.Status(err)
	l := h.log(r)
	if code >= http.StatusInternalServerError {
		l.Error("handler error", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	} else {
		l.Info("request rejected", slog.String("path", r.URL.Path), slog.Int("status", code), slog.Any("error", err))
	}
	respond.Error(w, err)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

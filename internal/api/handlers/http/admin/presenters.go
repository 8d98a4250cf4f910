package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/respond"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
)

const maxAuditLimit = 500

type zoneView struct {
	domain.Zone
	Color string `json:"color"`
}

func toZoneView(z domain.Zone) zoneView {
	return zoneView{Zone: z, Color: z.Status.Color()}
}

func toZoneViews(zones []domain.Zone) []zoneView {
	out := make([]zoneView, 0, len(zones))
	for _, z := range zones {
		out = append(out, toZoneView(z))
	}
	return out
}

// coordinatorView never carries the password digest.
type coordinatorView struct {
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	Active    bool   `json:"active"`
}

func toCoordinatorViews(list []domain.Coordinator) []coordinatorView {
	out := make([]coordinatorView, 0, len(list))
	for _, c := range list {
		out = append(out, coordinatorView{
			Username:  c.Username,
			CreatedAt: c.CreatedAt,
			Active:    c.Active,
		})
	}
	return out
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	respond.Error(w, err)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

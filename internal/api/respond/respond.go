package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

// Status maps a service error onto the HTTP status and the message shown
// to the client.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, e.ErrStoreUnavailable.Error()
	case errors.Is(err, e.ErrZoneNotFound):
		return http.StatusNotFound, e.ErrZoneNotFound.Error()
	case errors.Is(err, e.ErrCoordinatorNotFound):
		return http.StatusNotFound, e.ErrCoordinatorNotFound.Error()
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, e.ErrAlreadyExists), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "already exists"
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrDeactivated):
		return http.StatusUnauthorized, e.ErrDeactivated.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// Error writes the mapped status. Bad requests also carry the reason so
// forms can point at the offending field.
func Error(w http.ResponseWriter, err error) int {
	code, msg := Status(err)
	body := map[string]string{"error": msg}
	if code == http.StatusBadRequest {
		body["details"] = err.Error()
	}
	JSON(w, code, body)
	return code
}

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

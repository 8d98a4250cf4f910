package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/respond"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err     error
		code    int
		message string
	}{
		{fmt.Errorf("repo: %w", e.ErrNotFound), http.StatusNotFound, "not found"},
		{fmt.Errorf("service.Zones.Get: zone_4: %w", e.ErrZoneNotFound), http.StatusNotFound, "zone not found"},
		{fmt.Errorf("service.Coordinators.Deactivate: bob: %w", e.ErrCoordinatorNotFound), http.StatusNotFound, "coordinator not found"},
		{fmt.Errorf("repo: %w", e.ErrAlreadyExists), http.StatusConflict, "already exists"},
		{fmt.Errorf("repo: %w", e.ErrInvalidInput), http.StatusBadRequest, "invalid input"},
		{e.ErrInvalidCoordinates, http.StatusBadRequest, "invalid input"},
		{e.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect password"},
		{e.ErrDeactivated, http.StatusUnauthorized, "account deactivated"},
		{e.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{e.ErrForbidden, http.StatusForbidden, "forbidden"},
		{&e.StoreError{Op: "GET", Path: "zones", Status: 500}, http.StatusServiceUnavailable, "store unavailable, retry"},
		{errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		code, msg := respond.Status(tc.err)
		if code != tc.code || msg != tc.message {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.code, tc.message, code, msg)
		}
	}
}

func TestError_BadRequestCarriesDetails(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	code := respond.Error(rr, fmt.Errorf("name is required: %w", e.ErrInvalidInput))

	if code != http.StatusBadRequest || rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d/%d", code, rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "invalid input" || body["details"] == "" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestError_InternalHidesCause(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	respond.Error(rr, errors.New("pgx: connection refused at 10.0.0.3"))

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := body["details"]; ok || body["error"] != "internal error" {
		t.Fatalf("unexpected body %v", body)
	}
}

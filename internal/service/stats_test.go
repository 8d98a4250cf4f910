package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service"
	mock_service "github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service/mocks"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

func TestStats_GetStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneManager(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)

	zones.EXPECT().
		List(gomock.Any()).
		Return([]domain.Zone{
			{ID: "zone_0", VolunteerCount: 10, Status: domain.ZoneNeeded},
			{ID: "zone_1", VolunteerCount: 80, Status: domain.ZoneOptimal},
			{ID: "zone_2", VolunteerCount: 200, Status: domain.ZoneOverflow},
		}, nil).
		Times(1)
	audit.EXPECT().
		CountSince(gomock.Any(), 60).
		Return([]domain.AuditCount{
			{Action: domain.AuditZoneUpdated, Success: true, Count: 4},
			{Action: domain.AuditZoneUpdated, Success: false, Count: 2},
			{Action: domain.AuditZoneCreated, Success: true, Count: 1},
			{Action: domain.AuditLoginFailed, Success: false, Count: 3},
			{Action: domain.AuditLoginSucceeded, Success: true, Count: 9},
		}, nil).
		Times(1)

	svc := service.NewStats(zones, audit, newTestLogger())

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := &domain.AdminStats{
		Zones: domain.ZoneSummary{
			TotalZones:      3,
			NeededZones:     1,
			OptimalZones:    1,
			OverflowZones:   1,
			TotalVolunteers: 290,
		},
		Minutes:      60,
		Mutations:    5,
		FailedLogins: 3,
		MutationsByKey: map[string]int64{
			domain.AuditZoneUpdated: 4,
			domain.AuditZoneCreated: 1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestStats_GetStats_WithoutAudit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneManager(ctrl)
	zones.EXPECT().List(gomock.Any()).Return([]domain.Zone{}, nil).Times(1)

	svc := service.NewStats(zones, nil, newTestLogger())

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 15})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Zones.TotalZones != 0 || got.Mutations != 0 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestStats_GetStats_ErrorPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneManager(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)

	zones.EXPECT().
		List(gomock.Any()).
		Return(nil, &e.StoreError{Op: "GET", Path: "zones", Status: 503}).
		Times(1)
	audit.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := service.NewStats(zones, audit, newTestLogger())

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 5})
	if !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestStats_GetStats_InvalidMinutes(t *testing.T) {
	t.Parallel()

	svc := service.NewStats(nil, nil, newTestLogger())

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 0})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

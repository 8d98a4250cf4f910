package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/goleak"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	mock_workers "github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/workers/mocks"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCacheWarmer_WarmWritesView(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_workers.NewMockZoneLister(ctrl)
	cache := mock_workers.NewMockZoneCacheWriter(ctrl)

	view := []domain.Zone{{ID: "zone_0", Name: "Paiporta", Status: domain.ZoneNeeded}}
	zones.EXPECT().List(gomock.Any()).Return(view, nil).Times(1)
	cache.EXPECT().Set(gomock.Any(), view, 90*time.Second).Return(nil).Times(1)

	w := NewCacheWarmer(zones, cache, 90*time.Second, time.Minute, newLogger())
	if !w.warm(context.Background()) {
		t.Fatalf("expected warm to succeed")
	}
}

func TestCacheWarmer_ListFailureSkipsWrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_workers.NewMockZoneLister(ctrl)
	cache := mock_workers.NewMockZoneCacheWriter(ctrl)

	zones.EXPECT().List(gomock.Any()).Return(nil, errors.New("store unavailable, retry")).Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := NewCacheWarmer(zones, cache, time.Minute, time.Minute, newLogger())
	if w.warm(context.Background()) {
		t.Fatalf("expected warm to fail")
	}
}

func TestCacheWarmer_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_workers.NewMockZoneLister(ctrl)
	cache := mock_workers.NewMockZoneCacheWriter(ctrl)

	warmed := make(chan struct{}, 8)
	zones.EXPECT().List(gomock.Any()).Return([]domain.Zone{}, nil).MinTimes(2)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []domain.Zone, time.Duration) error {
			select {
			case warmed <- struct{}{}:
			default:
			}
			return nil
		}).
		MinTimes(2)

	w := NewCacheWarmer(zones, cache, time.Minute, 5*time.Millisecond, newLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-warmed:
		case <-time.After(5 * time.Second):
			t.Fatalf("cache was not warmed")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("warmer did not stop")
	}
}

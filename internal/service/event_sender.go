package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/config"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

const (
	eventMaxRetries = 3
	eventPopTimeout = 5 * time.Second
)

// EventSender drains zone status changes from the queue and POSTs each one
// to the configured webhook.
type EventSender struct {
	logger  *slog.Logger
	cfg     config.WebhookConfig
	queue   EventSource
	http    *http.Client
	backoff time.Duration
}

func NewEventSender(logger *slog.Logger, cfg config.WebhookConfig, q EventSource) *EventSender {
	return &EventSender{
		logger:  logger,
		cfg:     cfg,
		queue:   q,
		http:    &http.Client{Timeout: 5 * time.Second},
		backoff: time.Second,
	}
}

// Run blocks until ctx is cancelled.
func (s *EventSender) Run(ctx context.Context) {
	s.logger.Info("event sender started", slog.String("url", s.cfg.URL))

	for {
		if ctx.Err() != nil {
			s.logger.Info("event sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		}

		ev, err := s.queue.BRPop(ctx, eventPopTimeout)
		if err != nil {
			if errors.Is(err, e.ErrEventQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("event pop failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending status change",
			slog.String("zone_id", ev.ZoneID),
			slog.String("status", string(ev.Status)),
		)
		s.sendWithRetry(ctx, ev)
	}
}

func (s *EventSender) sendWithRetry(ctx context.Context, ev domain.ZoneStatusChanged) bool {
	body, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal status change failed", slog.Any("error", err))
		return false
	}

	for attempt := 1; attempt <= eventMaxRetries; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("build webhook request failed", slog.Any("error", err))
			return false
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return true
			}
		}

		var reason string
		if err != nil {
			reason = err.Error()
		} else {
			reason = resp.Status
		}
		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("zone_id", ev.ZoneID),
			slog.String("reason", reason),
		)

		if attempt < eventMaxRetries {
			sleep(ctx, time.Duration(attempt)*s.backoff)
		}
	}

	s.logger.Error("status change dropped", slog.String("zone_id", ev.ZoneID))
	return false
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

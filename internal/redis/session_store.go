package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

const sessionPrefix = "session:"

// SessionStore keeps login sessions under their opaque token. Redis expiry
// is the session lifetime.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(r *Redis) *SessionStore {
	return &SessionStore{client: r.Client}
}

func (s *SessionStore) Save(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	if sess.Token == "" {
		return fmt.Errorf("session without token: %w", e.ErrInvalidInput)
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionPrefix+sess.Token, b, ttl).Err(); err != nil {
		return unavailable("redis.SessionStore.Save", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, e.ErrNotFound
		}
		return nil, unavailable("redis.SessionStore.Get", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionPrefix+token).Err(); err != nil {
		return unavailable("redis.SessionStore.Delete", err)
	}
	return nil
}

// unavailable marks a failed round trip so callers answer "retry" rather
// than an internal error. Context errors keep their own meaning.
func unavailable(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, e.ErrStoreUnavailable, err)
}

package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/validator"
)

const coordinatorsPath = "coordinators"

// HashPassword is the digest stored for coordinator accounts. It must stay
// deterministic so records written by earlier deployments keep verifying.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

type CoordinatorDirectory struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewCoordinatorDirectory(store Store, logger *slog.Logger) *CoordinatorDirectory {
	return &CoordinatorDirectory{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func coordinatorPath(username string) string {
	return coordinatorsPath + "/" + username
}

// storedCoordinator mirrors the record layout; Active is a pointer so a
// missing flag reads as active.
type storedCoordinator struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at"`
	Active    *bool  `json:"active"`
}

func (s storedCoordinator) toDomain(key string) domain.Coordinator {
	c := domain.Coordinator{
		Username:     s.Username,
		PasswordHash: s.Password,
		CreatedAt:    s.CreatedAt,
		Active:       s.Active == nil || *s.Active,
	}
	if c.Username == "" {
		c.Username = key
	}
	if c.CreatedAt == "" {
		c.CreatedAt = domain.LastUpdateAbsent
	}
	return c
}

func checkUsername(op, username string) (string, error) {
	username = strings.TrimSpace(username)
	if !validator.IsStoreKey(username) {
		return "", fmt.Errorf("%s: username %q: %w", op, username, e.ErrInvalidInput)
	}
	return username, nil
}

func (d *CoordinatorDirectory) fetch(ctx context.Context, op, username string) (*domain.Coordinator, error) {
	raw, err := d.store.Get(ctx, coordinatorPath(username))
	if err != nil {
		d.logger.Error("store get failed", slog.String("op", op), slog.String("username", username), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%s: %s: %w", op, username, e.ErrCoordinatorNotFound)
	}
	var rec storedCoordinator
	if err := json.Unmarshal(raw, &rec); err != nil {
		d.logger.Error("malformed coordinator record", slog.String("op", op), slog.String("username", username), slog.Any("error", err))
		return nil, fmt.Errorf("%s: coordinator %s: %w", op, username, e.ErrInvalidState)
	}
	c := rec.toDomain(username)
	return &c, nil
}

// Add creates an active coordinator. An existing username is never
// overwritten.
func (d *CoordinatorDirectory) Add(ctx context.Context, username, password string) error {
	const op = "service.Coordinators.Add"

	username, err := checkUsername(op, username)
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("%s: empty password: %w", op, e.ErrInvalidInput)
	}

	_, err = d.fetch(ctx, op, username)
	switch {
	case err == nil:
		return fmt.Errorf("%s: username %s: %w", op, username, e.ErrAlreadyExists)
	case !errors.Is(err, e.ErrNotFound):
		return err
	}

	active := true
	rec := storedCoordinator{
		Username:  username,
		Password:  HashPassword(password),
		CreatedAt: d.now().Format(time.RFC3339),
		Active:    &active,
	}
	if err := d.store.Put(ctx, coordinatorPath(username), rec); err != nil {
		d.logger.Error("store put failed", slog.String("op", op), slog.String("username", username), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	d.logger.Info("coordinator added", slog.String("username", username))
	return nil
}

// Verify checks existence, then the password, then the active flag. A wrong
// password on a deactivated account reports the password failure.
func (d *CoordinatorDirectory) Verify(ctx context.Context, username, password string) (*domain.Coordinator, error) {
	const op = "service.Coordinators.Verify"

	username, err := checkUsername(op, username)
	if err != nil {
		return nil, err
	}
	c, err := d.fetch(ctx, op, username)
	if err != nil {
		return nil, err
	}

	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(c.PasswordHash))) != 1 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCredentials)
	}
	if !c.Active {
		return nil, fmt.Errorf("%s: %w", op, e.ErrDeactivated)
	}
	return c, nil
}

// Deactivate is idempotent. There is no way back through this type.
func (d *CoordinatorDirectory) Deactivate(ctx context.Context, username string) error {
	const op = "service.Coordinators.Deactivate"

	username, err := checkUsername(op, username)
	if err != nil {
		return err
	}
	if _, err := d.fetch(ctx, op, username); err != nil {
		return err
	}
	if err := d.store.Patch(ctx, coordinatorPath(username), map[string]any{"active": false}); err != nil {
		d.logger.Error("store patch failed", slog.String("op", op), slog.String("username", username), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	d.logger.Info("coordinator deactivated", slog.String("username", username))
	return nil
}

func (d *CoordinatorDirectory) Delete(ctx context.Context, username string) error {
	const op = "service.Coordinators.Delete"

	username, err := checkUsername(op, username)
	if err != nil {
		return err
	}
	if _, err := d.fetch(ctx, op, username); err != nil {
		return err
	}
	if err := d.store.Delete(ctx, coordinatorPath(username)); err != nil {
		d.logger.Error("store delete failed", slog.String("op", op), slog.String("username", username), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	d.logger.Info("coordinator deleted", slog.String("username", username))
	return nil
}

// List returns every account sorted by username, with the username taken
// from the key when the record lacks it.
func (d *CoordinatorDirectory) List(ctx context.Context) ([]domain.Coordinator, error) {
	const op = "service.Coordinators.List"

	raw, err := d.store.Get(ctx, coordinatorsPath)
	if err != nil {
		d.logger.Error("store get failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	out := []domain.Coordinator{}
	if isNull(raw) {
		return out, nil
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		d.logger.Error("coordinator collection unreadable", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidState)
	}
	for key, v := range records {
		if isNull(v) {
			continue
		}
		var rec storedCoordinator
		if err := json.Unmarshal(v, &rec); err != nil {
			d.logger.Warn("skipping malformed coordinator record", slog.String("username", key), slog.Any("error", err))
			continue
		}
		out = append(out, rec.toDomain(key))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

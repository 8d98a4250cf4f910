package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/config"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

// AuthService turns credentials into sessions and tokens back into
// sessions. Volunteers never log in; an empty token resolves to the
// anonymous session.
type AuthService struct {
	coordinators CoordinatorManager
	sessions     SessionStore
	audit        AuditRepository
	admin        config.AdminConfig
	ttl          time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

func NewAuthService(
	coordinators CoordinatorManager,
	sessions SessionStore,
	audit AuditRepository,
	admin config.AdminConfig,
	ttl time.Duration,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		coordinators: coordinators,
		sessions:     sessions,
		audit:        audit,
		admin:        admin,
		ttl:          ttl,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// AdminLogin requires the username, the bcrypt-checked password and the
// secret key. Every mismatch reports the same error.
func (a *AuthService) AdminLogin(ctx context.Context, req domain.AdminLoginRequest) (*domain.Session, error) {
	const op = "service.Auth.AdminLogin"

	userOK := equalConstantTime(strings.TrimSpace(req.Username), a.admin.Username)
	keyOK := equalConstantTime(req.SecretKey, a.admin.SecretKey)
	passErr := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(req.Password))

	if !userOK || !keyOK || passErr != nil {
		a.logger.Warn("admin login rejected", slog.String("username", req.Username))
		a.record(ctx, domain.AuditLoginFailed, req.Username, domain.RoleAdministrator, false, e.ErrInvalidCredentials.Error())
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCredentials)
	}

	return a.open(ctx, op, domain.RoleAdministrator, a.admin.Username)
}

func (a *AuthService) CoordinatorLogin(ctx context.Context, req domain.CoordinatorLoginRequest) (*domain.Session, error) {
	const op = "service.Auth.CoordinatorLogin"

	c, err := a.coordinators.Verify(ctx, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, e.ErrStoreUnavailable) {
			a.record(ctx, domain.AuditLoginFailed, req.Username, domain.RoleCoordinator, false, err.Error())
		}
		a.logger.Warn("coordinator login rejected", slog.String("username", req.Username), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a.open(ctx, op, domain.RoleCoordinator, c.Username)
}

func (a *AuthService) open(ctx context.Context, op string, role domain.Role, username string) (*domain.Session, error) {
	now := a.now()
	sess := domain.Session{
		Token:     uuid.NewString(),
		Role:      role,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(a.ttl),
	}
	if err := a.sessions.Save(ctx, sess, a.ttl); err != nil {
		a.logger.Error("session save failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	a.record(ctx, domain.AuditLoginSucceeded, username, role, true, "")
	a.logger.Info("session opened", slog.String("username", username), slog.String("role", string(role)))
	return &sess, nil
}

// Resolve maps a bearer token to its session. Unknown or expired tokens are
// ErrUnauthorized rather than silently downgraded to volunteer.
func (a *AuthService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	const op = "service.Auth.Resolve"

	if token == "" {
		return domain.Anonymous(), nil
	}
	sess, err := a.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
		}
		return domain.Session{}, e.WrapError(ctx, op, err)
	}
	if sess.Expired(a.now()) {
		_ = a.sessions.Delete(ctx, token)
		return domain.Session{}, fmt.Errorf("%s: session expired: %w", op, e.ErrUnauthorized)
	}
	return *sess, nil
}

func (a *AuthService) Logout(ctx context.Context, token string) error {
	const op = "service.Auth.Logout"

	if token == "" {
		return nil
	}
	if err := a.sessions.Delete(ctx, token); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (a *AuthService) record(ctx context.Context, action, actor string, role domain.Role, ok bool, reason string) {
	recordAudit(ctx, a.audit, a.logger, &domain.AuditEvent{
		ID:         uuid.New(),
		Action:     action,
		Actor:      actor,
		Role:       role,
		Target:     actor,
		Success:    ok,
		Reason:     reason,
		OccurredAt: a.now(),
	})
}

// recordAudit never fails the caller; a lost audit row is only logged.
func recordAudit(ctx context.Context, audit AuditRepository, logger *slog.Logger, ev *domain.AuditEvent) {
	if audit == nil {
		return
	}
	if err := audit.Save(ctx, ev); err != nil {
		logger.Warn("audit event dropped",
			slog.String("action", ev.Action),
			slog.String("actor", ev.Actor),
			slog.Any("error", err),
		)
	}
}

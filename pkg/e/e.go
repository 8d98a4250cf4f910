package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrStoreUnavailable   = errors.New("store unavailable, retry")
	ErrInvalidState       = errors.New("invalid stored state")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrDeactivated        = errors.New("account deactivated")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUniqueViolation    = errors.New("unique violation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrEventQueueEmpty    = errors.New("event queue is empty")

	// Both match ErrNotFound; their text is shown to clients.
	ErrZoneNotFound        = fmt.Errorf("zone %w", ErrNotFound)
	ErrCoordinatorNotFound = fmt.Errorf("coordinator %w", ErrNotFound)
)

// StoreError wraps a failed call to the remote JSON store. It always
// matches ErrStoreUnavailable.
type StoreError struct {
	Op     string
	Path   string
	Status int
	Err    error
}

func (s *StoreError) Error() string {
	if s.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", s.Op, s.Path, s.Status, ErrStoreUnavailable)
	}
	return fmt.Sprintf("%s %s: %v: %v", s.Op, s.Path, ErrStoreUnavailable, s.Err)
}

func (s *StoreError) Unwrap() []error {
	if s.Err == nil {
		return []error{ErrStoreUnavailable}
	}
	return []error{ErrStoreUnavailable, s.Err}
}

// WrapError maps driver and context errors onto the package sentinels.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	for _, known := range []error{ErrNotFound, ErrAlreadyExists, ErrInvalidInput, ErrInvalidState, ErrStoreUnavailable} {
		if errors.Is(err, known) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}

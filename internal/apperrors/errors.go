package apperrors

import (
	"errors"
	"fmt"
)

// Domain error kinds. Services return these (wrapped with context) instead of
// raising transport-level failures; controllers translate them to HTTP status
// codes at the boundary.
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrAnswerNotFound = errors.New("answer not found")

	// ErrGameNotOpen rejects submissions against a game that is not OPEN.
	ErrGameNotOpen = errors.New("game is not open for submissions")

	// ErrInvalidTransition rejects a game status change that does not follow
	// DRAFT -> OPEN -> CLOSED.
	ErrInvalidTransition = errors.New("invalid game status transition")

	// ErrNoChanceAvailable means the user holds no NOT_USED answer slot for
	// the game.
	ErrNoChanceAvailable = errors.New("no answer chance available")

	// ErrClaimConflict means every candidate slot was claimed by a concurrent
	// submission between selection and the conditional update. The caller must
	// not retry against the same slot.
	ErrClaimConflict = errors.New("answer chance claimed concurrently")
)

// StorageError wraps a persistence failure from one of the repositories. It is
// surfaced to the caller, never recovered locally.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError. A nil err returns nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is any of the not-found kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGameNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAnswerNotFound)
}

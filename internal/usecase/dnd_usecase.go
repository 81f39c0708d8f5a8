package usecase

import (
	"context"
	"time"

	"perimeter/internal/domain/entity"
)

// DNDUsecase manages the single Do Not Disturb state and answers the
// suppression question for the escalation policy.
type DNDUsecase interface {
	// Set activates DND for the given duration. endsAt is required for
	// DNDUntil and must be in the future; it is ignored for every other
	// duration. Setting DNDOff disables DND entirely.
	Set(ctx context.Context, duration entity.DNDDuration, endsAt *time.Time) (*entity.DoNotDisturbState, error)

	// Status returns the current state after normalizing expiry.
	Status(ctx context.Context) (*entity.DoNotDisturbState, error)

	// IsActive reports whether DND is in effect right now.
	IsActive(ctx context.Context) (bool, error)

	// ShouldSuppress reports whether a notification of the given priority
	// must be dropped. Critical always passes.
	ShouldSuppress(ctx context.Context, priority entity.Priority) (bool, error)

	// NormalizeExpired flips an expired timed state back to off and persists
	// it. Safe to call on a ticker; a no-op when nothing expired.
	NormalizeExpired(ctx context.Context) error

	// Refresh drops the cached state so the next read hits the store. Used
	// when another process mutated settings.
	Refresh()
}

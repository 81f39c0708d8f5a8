package usecase

import (
	"context"
	"time"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationCandidate is a throttle-approved notification entering the
// escalation policy.
type NotificationCandidate struct {
	GeofenceID uuid.UUID
	Kind       entity.EventKind
	Identifier string // Stable platform identifier, "geofence-<id>-<kind>".
	Title      string
	Body       string
	Priority   entity.Priority // Intrinsic priority from the definition.
}

// DeliveryOutcome reports what the policy decided for one candidate.
type DeliveryOutcome struct {
	Status            entity.DeliveryStatus
	EffectivePriority entity.Priority
	MessageID         string     // Downstream message ID when delivered.
	ReleaseAt         *time.Time // When a deferred candidate will be released.
	Reason            string     // Human-readable suppression/failure reason.
	Sound             bool
	Haptic            bool
}

// EscalationUsecase applies the notification escalation policy: priority
// overrides, DND suppression with the Critical bypass, quiet-hours deferral
// and sound/haptic stripping. Every decision is recorded as a delivery record.
type EscalationUsecase interface {
	// Deliver runs the full policy for one candidate and, when it passes,
	// hands it to the notification sender.
	Deliver(ctx context.Context, candidate *NotificationCandidate) (*DeliveryOutcome, error)

	// Preferences returns the current style preferences.
	Preferences(ctx context.Context) (*entity.NotificationStylePreferences, error)

	// UpdatePreferences validates and persists new style preferences.
	UpdatePreferences(ctx context.Context, prefs *entity.NotificationStylePreferences) (*entity.NotificationStylePreferences, error)

	// ResetPreferences restores the built-in defaults.
	ResetPreferences(ctx context.Context) (*entity.NotificationStylePreferences, error)

	// FlushDueDeferred delivers every deferred candidate whose release time
	// has passed. Deferred candidates are never dropped; whatever is due is
	// sent unconditionally. Returns the number delivered.
	FlushDueDeferred(ctx context.Context) (int, error)

	// PendingDeferred reports how many candidates are waiting for quiet
	// hours to end.
	PendingDeferred() int

	// Refresh drops the cached preferences so the next read hits the store.
	Refresh()
}

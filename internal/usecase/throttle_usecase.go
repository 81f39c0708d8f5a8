package usecase

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
)

// ThrottleUsecase owns per-geofence throttle state and decides whether a raw
// region event is eligible for notification.
//
// The decide / attempt-send / record-on-success ordering is deliberate:
// ShouldNotify is pure, and state is mutated only after the downstream send
// was actually enqueued, so a rejected send never corrupts the counters.
type ThrottleUsecase interface {
	// ShouldNotify reports whether the event passes the direction gate and
	// the mode's cooldown window. Pure: no state is mutated.
	ShouldNotify(ctx context.Context, definition *entity.GeofenceDefinition, kind entity.EventKind) (bool, error)

	// RecordNotificationSent rolls the daily counter over if needed,
	// increments the counters and stamps the send time. Call only after a
	// successful enqueue.
	RecordNotificationSent(ctx context.Context, geofenceID uuid.UUID) error

	// GetStats returns a read-only projection of the throttle state for the
	// diagnostics surface. Missing state reads as all-zero.
	GetStats(ctx context.Context, geofenceID uuid.UUID) (*entity.ThrottleState, error)

	// ResetState clears the throttle state for one geofence (debug/support tool).
	ResetState(ctx context.Context, geofenceID uuid.UUID) error
}

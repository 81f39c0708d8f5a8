package repository

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrThrottleStateNotFound is returned when no throttle state exists for a geofence.
var ErrThrottleStateNotFound = errors.New("throttle state not found")

// ThrottleRepository defines the persistence interface for per-geofence
// throttle state. State rows are created lazily on the first recorded send
// and deleted only by an explicit reset.
type ThrottleRepository interface {
	// FindThrottleState retrieves the state for a geofence.
	FindThrottleState(ctx context.Context, geofenceID uuid.UUID) (*entity.ThrottleState, error)

	// SaveThrottleState creates or replaces the state for a geofence.
	SaveThrottleState(ctx context.Context, state *entity.ThrottleState) error

	// DeleteThrottleState removes the state for a geofence.
	DeleteThrottleState(ctx context.Context, geofenceID uuid.UUID) error
}

package usecase

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
)

// ReconcileResult reports the deltas applied by one reconcile pass.
// Capacity overflow is a warning value, never an error: the definitions
// beyond the ceiling stay in the store but remain unmonitored.
type ReconcileResult struct {
	Added      []uuid.UUID `json:"added"`      // Regions registered by this pass.
	Removed    []uuid.UUID `json:"removed"`    // Regions deregistered by this pass.
	Monitored  int         `json:"monitored"`  // Regions registered after the pass.
	Enabled    int         `json:"enabled"`    // Enabled definitions in the store.
	Overflow   int         `json:"overflow"`   // Enabled definitions left unmonitored by the ceiling.
	Authorized bool        `json:"authorized"` // Whether always-authorization was granted.
}

// LifecycleUsecase keeps the platform's monitored-region registrations
// synchronized with enabled geofence definitions and resolves raw region
// identifiers back to definitions.
type LifecycleUsecase interface {
	// Reconcile recomputes the target monitored set (enabled definitions,
	// oldest-created first, capped at the region ceiling; empty when not
	// authorized) and applies the add/remove deltas. Registration failures
	// are logged and retried on the next pass. Idempotent.
	Reconcile(ctx context.Context) (*ReconcileResult, error)

	// Resolve looks up a definition by region ID. A miss returns (nil, nil):
	// the definition was deleted after the platform queued the event, and the
	// caller drops it silently.
	Resolve(ctx context.Context, regionID uuid.UUID) (*entity.GeofenceDefinition, error)

	// SetAuthorized persists the authorization state and reconciles.
	SetAuthorized(ctx context.Context, authorized bool) (*ReconcileResult, error)
}

// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGeofenceNotFound is returned when a geofence definition does not exist.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceRepository defines the persistence interface for geofence definitions.
// The store is the exclusive owner of definitions; everything else references
// them by ID.
type GeofenceRepository interface {
	// CreateGeofence persists a new geofence definition.
	CreateGeofence(ctx context.Context, geofence *entity.GeofenceDefinition) error

	// UpdateGeofence persists changes to an existing definition.
	UpdateGeofence(ctx context.Context, geofence *entity.GeofenceDefinition) error

	// DeleteGeofence removes a definition by its ID.
	DeleteGeofence(ctx context.Context, id uuid.UUID) error

	// FindGeofenceByID retrieves a definition by its unique ID.
	FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceDefinition, error)

	// ListGeofences retrieves all definitions ordered by creation time, oldest first.
	ListGeofences(ctx context.Context) ([]*entity.GeofenceDefinition, error)

	// CountGeofences returns the number of stored definitions.
	CountGeofences(ctx context.Context) (int64, error)
}

// Package usecase defines the application use-case interfaces.
package usecase

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceInput carries the user-editable fields of a geofence definition.
type GeofenceInput struct {
	Name             string                  `json:"name"`
	Latitude         float64                 `json:"latitude"`
	Longitude        float64                 `json:"longitude"`
	RadiusMeters     float64                 `json:"radius_meters"`
	NotifyOnEntry    bool                    `json:"notify_on_entry"`
	NotifyOnExit     bool                    `json:"notify_on_exit"`
	IsEnabled        bool                    `json:"is_enabled"`
	NotificationMode entity.NotificationMode `json:"notification_mode"`
	Priority         entity.Priority         `json:"priority"`
	EntryMessage     string                  `json:"entry_message"`
	ExitMessage      string                  `json:"exit_message"`
}

// GeofenceUsecase defines the interface for the geofence store: CRUD over
// definitions plus the reconcile trigger on every mutation.
type GeofenceUsecase interface {
	// CreateGeofence validates and persists a new definition, then reconciles
	// the monitored set.
	CreateGeofence(ctx context.Context, input *GeofenceInput) (*entity.GeofenceDefinition, error)

	// UpdateGeofence validates and persists changes to an existing definition,
	// then reconciles the monitored set.
	UpdateGeofence(ctx context.Context, id uuid.UUID, input *GeofenceInput) (*entity.GeofenceDefinition, error)

	// DeleteGeofence removes a definition, then reconciles the monitored set.
	DeleteGeofence(ctx context.Context, id uuid.UUID) error

	// SetGeofenceEnabled flips the enabled flag, then reconciles the monitored set.
	SetGeofenceEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*entity.GeofenceDefinition, error)

	// GetGeofence retrieves one definition by ID.
	GetGeofence(ctx context.Context, id uuid.UUID) (*entity.GeofenceDefinition, error)

	// ListGeofences retrieves all definitions, oldest first.
	ListGeofences(ctx context.Context) ([]*entity.GeofenceDefinition, error)
}

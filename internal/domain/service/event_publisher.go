package service

import (
	"context"
	"time"
)

// Engine event types carried on the Pub/Sub topic between the API server and
// the fence worker.
const (
	// EngineEventLocationUpdate carries a raw device location sample.
	EngineEventLocationUpdate = "location_update"
	// EngineEventGeofenceMutated signals that a definition was created,
	// updated or deleted; the worker must reconcile its monitored set.
	EngineEventGeofenceMutated = "geofence_mutated"
	// EngineEventSettingsMutated signals that preferences or the Do Not
	// Disturb state changed; the worker refreshes its snapshots.
	EngineEventSettingsMutated = "settings_mutated"
	// EngineEventAuthorizationChanged signals an authorization-state
	// transition; the worker must reconcile.
	EngineEventAuthorizationChanged = "authorization_changed"
)

// LocationUpdate is a raw device location sample evaluated against the
// registered regions by the worker.
type LocationUpdate struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters,omitempty"`
	ObservedAt     time.Time `json:"observed_at"`
}

// EngineEvent is the envelope published by the API server and consumed by
// the fence worker's push endpoint.
type EngineEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing.
	Type      string          `json:"type"`
	Location  *LocationUpdate `json:"location,omitempty"` // Set for location_update events.
}

// EventPublisher defines the interface for publishing engine events to a
// message queue.
type EventPublisher interface {
	// PublishEngineEvent publishes an event for async processing by the worker.
	PublishEngineEvent(ctx context.Context, event *EngineEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

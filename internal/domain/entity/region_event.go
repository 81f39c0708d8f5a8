// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventKind represents the direction of a region crossing.
type EventKind string

const (
	// EventKindEntry indicates the device entered the region.
	EventKindEntry EventKind = "entry"
	// EventKindExit indicates the device left the region.
	EventKindExit EventKind = "exit"
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// IsValid checks if the EventKind is a valid value.
func (k EventKind) IsValid() bool {
	switch k {
	case EventKindEntry, EventKindExit:
		return true
	default:
		return false
	}
}

// RegionEvent is a raw region crossing raised by the region monitor.
// It carries only the region identifier; the lifecycle manager resolves it
// to a GeofenceDefinition, and a lookup miss means the definition was deleted
// after the event was already queued.
type RegionEvent struct {
	GeofenceID uuid.UUID `json:"geofence_id"` // The ID of the crossed region.
	Kind       EventKind `json:"kind"`        // Whether the device entered or left.
	OccurredAt time.Time `json:"occurred_at"` // Timestamp of the crossing.
}

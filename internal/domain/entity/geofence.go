// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceDefinition represents a user-defined circular region with its notification rules.
type GeofenceDefinition struct {
	ID               uuid.UUID        `json:"id"`                // The Global Unique Identifier (GUID) for the geofence.
	Name             string           `json:"name"`              // The user-facing name of the geofence (e.g., "Home").
	Latitude         float64          `json:"latitude"`          // The geographic latitude of the region center.
	Longitude        float64          `json:"longitude"`         // The geographic longitude of the region center.
	RadiusMeters     float64          `json:"radius_meters"`     // The region radius in meters.
	NotifyOnEntry    bool             `json:"notify_on_entry"`   // Whether entering the region should notify.
	NotifyOnExit     bool             `json:"notify_on_exit"`    // Whether leaving the region should notify.
	IsEnabled        bool             `json:"is_enabled"`        // Whether the geofence is eligible for monitoring.
	NotificationMode NotificationMode `json:"notification_mode"` // The cooldown/frequency mode for notifications.
	Priority         Priority         `json:"priority"`          // The intrinsic priority of notifications from this geofence.
	EntryMessage     string           `json:"entry_message"`     // Custom message for entry notifications.
	ExitMessage      string           `json:"exit_message"`      // Custom message for exit notifications.
	CreatedAt        time.Time        `json:"created_at"`        // Timestamp of when this geofence was created.
	UpdatedAt        time.Time        `json:"updated_at"`        // Timestamp of the last modification.
}

// CanFire reports whether the geofence can ever produce a notification.
// A definition with neither direction enabled is legal and simply never fires.
func (g *GeofenceDefinition) CanFire() bool {
	return g.NotifyOnEntry || g.NotifyOnExit
}

// WantsEvent reports whether the geofence is configured to notify for the given event kind.
func (g *GeofenceDefinition) WantsEvent(kind EventKind) bool {
	switch kind {
	case EventKindEntry:
		return g.NotifyOnEntry
	case EventKindExit:
		return g.NotifyOnExit
	default:
		return false
	}
}

// MessageFor returns the configured message for the given event kind,
// falling back to a generic message when none is configured.
func (g *GeofenceDefinition) MessageFor(kind EventKind) string {
	switch kind {
	case EventKindEntry:
		if g.EntryMessage != "" {
			return g.EntryMessage
		}

		return "You have arrived at " + g.Name
	case EventKindExit:
		if g.ExitMessage != "" {
			return g.ExitMessage
		}

		return "You have left " + g.Name
	default:
		return g.Name
	}
}

// SameRegionAs reports whether two definitions describe the same registered region.
// Platform regions are immutable once registered, so any difference here forces
// a stop-and-restart of the registration.
func (g *GeofenceDefinition) SameRegionAs(other *GeofenceDefinition) bool {
	if other == nil {
		return false
	}

	return g.Latitude == other.Latitude &&
		g.Longitude == other.Longitude &&
		g.RadiusMeters == other.RadiusMeters
}

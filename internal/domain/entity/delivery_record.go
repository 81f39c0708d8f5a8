// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the final outcome of an engine decision for a
// single region event.
type DeliveryStatus string

const (
	// DeliveryStatusDelivered means the notification was handed to the platform sender.
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	// DeliveryStatusThrottled means the per-geofence cooldown rejected the event.
	DeliveryStatusThrottled DeliveryStatus = "throttled"
	// DeliveryStatusSuppressed means Do Not Disturb swallowed the notification.
	DeliveryStatusSuppressed DeliveryStatus = "suppressed"
	// DeliveryStatusDeferred means quiet hours queued the notification for later delivery.
	DeliveryStatusDeferred DeliveryStatus = "deferred"
	// DeliveryStatusFailed means the platform sender rejected the notification.
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// DeliveryRecord is a persisted audit row for one engine decision. Absence of
// a notification is indistinguishable from "working as configured" unless the
// user consults these records through the diagnostics surface.
type DeliveryRecord struct {
	ID            uuid.UUID      `json:"id"`                 // The Global Unique Identifier (GUID) for the record.
	GeofenceID    uuid.UUID      `json:"geofence_id"`        // The geofence whose event was decided.
	EventKind     EventKind      `json:"event_kind"`         // The direction of the crossing.
	Status        DeliveryStatus `json:"status"`             // The decision outcome.
	Priority      Priority       `json:"priority"`           // The effective priority the decision resolved to.
	MessageID     string         `json:"message_id"`         // Platform message ID when delivered.
	FailureReason string         `json:"failure_reason"`     // Reason when the sender rejected the notification.
	DecidedAt     time.Time      `json:"decided_at"`         // Timestamp of the decision.
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationMode represents the cooldown/frequency mode of a geofence.
type NotificationMode string

const (
	// NotificationModeNormal applies a 30 minute cooldown between notifications.
	NotificationModeNormal NotificationMode = "normal"
	// NotificationModeFrequent applies a 15 minute cooldown between notifications.
	NotificationModeFrequent NotificationMode = "frequent"
	// NotificationModeQuiet applies a 2 hour cooldown between notifications.
	NotificationModeQuiet NotificationMode = "quiet"
	// NotificationModeOnceDaily allows at most one notification per local calendar day.
	NotificationModeOnceDaily NotificationMode = "once_daily"
)

// String returns the string representation of the NotificationMode.
func (m NotificationMode) String() string {
	return string(m)
}

// IsValid checks if the NotificationMode is a valid value.
func (m NotificationMode) IsValid() bool {
	switch m {
	case NotificationModeNormal, NotificationModeFrequent, NotificationModeQuiet, NotificationModeOnceDaily:
		return true
	default:
		return false
	}
}

// Cooldown returns the minimum wall-clock interval between two notifications
// for the mode. OnceDaily has no fixed interval; its cooldown runs until the
// next local midnight and is handled through the daily counter instead.
func (m NotificationMode) Cooldown() time.Duration {
	switch m {
	case NotificationModeFrequent:
		return 15 * time.Minute
	case NotificationModeQuiet:
		return 120 * time.Minute
	case NotificationModeOnceDaily:
		return 0
	default:
		return 30 * time.Minute
	}
}

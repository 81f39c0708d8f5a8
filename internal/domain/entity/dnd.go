// Package entity contains the core business objects of the project.
package entity

import "time"

// DNDDuration represents how long a Do Not Disturb activation lasts.
type DNDDuration string

const (
	// DNDDurationOff means Do Not Disturb is disabled.
	DNDDurationOff DNDDuration = "off"
	// DNDDurationOneHour suppresses notifications for one hour.
	DNDDurationOneHour DNDDuration = "one_hour"
	// DNDDurationTwoHours suppresses notifications for two hours.
	DNDDurationTwoHours DNDDuration = "two_hours"
	// DNDDurationOneDay suppresses notifications for 24 hours.
	DNDDurationOneDay DNDDuration = "one_day"
	// DNDDurationPermanent suppresses notifications until explicitly turned off.
	DNDDurationPermanent DNDDuration = "permanent"
	// DNDDurationUntil suppresses notifications until a custom end date.
	DNDDurationUntil DNDDuration = "until"
)

// String returns the string representation of the DNDDuration.
func (d DNDDuration) String() string {
	return string(d)
}

// IsValid checks if the DNDDuration is a valid value.
func (d DNDDuration) IsValid() bool {
	switch d {
	case DNDDurationOff, DNDDurationOneHour, DNDDurationTwoHours,
		DNDDurationOneDay, DNDDurationPermanent, DNDDurationUntil:
		return true
	default:
		return false
	}
}

// Interval returns the fixed suppression interval for timed durations and
// zero for off/permanent/until.
func (d DNDDuration) Interval() time.Duration {
	switch d {
	case DNDDurationOneHour:
		return time.Hour
	case DNDDurationTwoHours:
		return 2 * time.Hour
	case DNDDurationOneDay:
		return 24 * time.Hour
	default:
		return 0
	}
}

// DoNotDisturbState is the global, time-bounded suppression flag.
// Invariant: Enabled is false whenever Duration is off, and for non-permanent
// durations the expiry check against EndsAt is authoritative.
type DoNotDisturbState struct {
	Duration  DNDDuration `json:"duration"`           // The active duration policy.
	Enabled   bool        `json:"enabled"`            // Whether suppression is currently requested.
	EndsAt    *time.Time  `json:"ends_at,omitempty"`  // Absolute end time for timed and until durations.
	UpdatedAt time.Time   `json:"updated_at"`         // Timestamp of the last modification.
}

// ActiveAt reports whether suppression is in effect at the given instant.
func (s *DoNotDisturbState) ActiveAt(now time.Time) bool {
	if !s.Enabled || s.Duration == DNDDurationOff {
		return false
	}
	if s.Duration == DNDDurationPermanent {
		return true
	}
	if s.EndsAt == nil {
		return false
	}

	return now.Before(*s.EndsAt)
}

// OffDoNotDisturbState returns the normalized disabled state.
func OffDoNotDisturbState() *DoNotDisturbState {
	return &DoNotDisturbState{Duration: DNDDurationOff, Enabled: false}
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ThrottleState tracks per-geofence notification counters used by the
// throttle controller. It is created lazily on the first recorded send,
// survives process restarts, and is cleared only by an explicit reset.
type ThrottleState struct {
	GeofenceID         uuid.UUID  `json:"geofence_id"`                    // The geofence this state belongs to.
	DailyCount         int        `json:"daily_count"`                    // Notifications sent during the current local calendar day.
	TotalCount         int        `json:"total_count"`                    // Lifetime notification count (monotonic).
	LastNotificationAt *time.Time `json:"last_notification_at,omitempty"` // Timestamp of the most recent recorded send.
	UpdatedAt          time.Time  `json:"updated_at"`                     // Timestamp of the last modification.
}

// SameLocalDay reports whether two instants fall on the same calendar day
// in the given location.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// EffectiveDailyCount returns the daily counter as seen at the given instant:
// zero when the last recorded send happened on a previous local calendar day.
// The stored counter is only rolled over when a send is actually recorded.
func (s *ThrottleState) EffectiveDailyCount(now time.Time) int {
	if s.LastNotificationAt == nil {
		return 0
	}
	if !SameLocalDay(*s.LastNotificationAt, now, now.Location()) {
		return 0
	}

	return s.DailyCount
}

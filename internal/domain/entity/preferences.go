// Package entity contains the core business objects of the project.
package entity

import "time"

// PriorityOverrides maps an intrinsic priority to an overriding effective
// priority. The priority set is closed and small, so this is a fixed array
// indexed by Priority.Rank; an empty slot falls through to the default style.
type PriorityOverrides [PriorityCount]Priority

// Lookup returns the override for the given priority and whether one is set.
func (o PriorityOverrides) Lookup(p Priority) (Priority, bool) {
	override := o[p.Rank()]
	if override == "" {
		return "", false
	}

	return override, true
}

// NotificationStylePreferences is the global, singleton-lifetime set of
// delivery-style preferences. Mutated by the settings surface; the engine
// reads an immutable snapshot per delivery decision.
type NotificationStylePreferences struct {
	DefaultPriority   Priority          `json:"default_priority"`    // Style used when no per-priority override matches.
	Overrides         PriorityOverrides `json:"overrides"`           // Sparse per-priority style overrides.
	SoundEnabled      bool              `json:"sound_enabled"`       // Whether delivered notifications may play sound.
	HapticEnabled     bool              `json:"haptic_enabled"`      // Whether delivered notifications may vibrate.
	QuietHoursEnabled bool              `json:"quiet_hours_enabled"` // Whether the quiet-hours window is active.
	QuietHoursStart   int               `json:"quiet_hours_start"`   // Window start, minutes after local midnight.
	QuietHoursEnd     int               `json:"quiet_hours_end"`     // Window end, minutes after local midnight.
	UpdatedAt         time.Time         `json:"updated_at"`          // Timestamp of the last modification.
}

// DefaultStylePreferences returns the factory preferences used before the
// user has saved any and by reset-to-defaults.
func DefaultStylePreferences() *NotificationStylePreferences {
	return &NotificationStylePreferences{
		DefaultPriority:   PriorityMedium,
		SoundEnabled:      true,
		HapticEnabled:     true,
		QuietHoursEnabled: false,
		QuietHoursStart:   22 * 60,
		QuietHoursEnd:     7 * 60,
	}
}

// EffectivePriority resolves the delivery style for an intrinsic priority:
// the per-priority override when one is set, the default style otherwise.
// The intrinsic priority never passes through on its own; Do Not Disturb
// and quiet-hours bypasses key off the intrinsic priority before this
// resolution, not after.
func (p *NotificationStylePreferences) EffectivePriority(intrinsic Priority) Priority {
	if override, ok := p.Overrides.Lookup(intrinsic); ok {
		return override
	}
	if p.DefaultPriority.IsValid() {
		return p.DefaultPriority
	}

	return PriorityMedium
}

// InQuietHours reports whether the given minute-of-day falls inside the
// quiet-hours window. A window whose start is later than its end wraps
// past midnight (e.g. 22:00-07:00).
func (p *NotificationStylePreferences) InQuietHours(minuteOfDay int) bool {
	if !p.QuietHoursEnabled {
		return false
	}
	start, end := p.QuietHoursStart, p.QuietHoursEnd
	if start <= end {
		return minuteOfDay >= start && minuteOfDay < end
	}

	return minuteOfDay >= start || minuteOfDay < end
}

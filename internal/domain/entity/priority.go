// Package entity contains the core business objects of the project.
package entity

// Priority represents the delivery priority of a notification. It doubles as
// the delivery style: the escalation policy maps a candidate's intrinsic
// priority to an effective priority through the user's style preferences.
type Priority string

const (
	// PriorityLow delivers silently without interrupting the user.
	PriorityLow Priority = "low"
	// PriorityMedium is the default notification priority.
	PriorityMedium Priority = "medium"
	// PriorityHigh delivers prominently (heads-up style).
	PriorityHigh Priority = "high"
	// PriorityCritical bypasses Do Not Disturb and quiet hours. The only bypass in the system.
	PriorityCritical Priority = "critical"
)

// PriorityCount is the number of defined priorities; the per-priority override
// table is a fixed array of this size indexed by Rank.
const PriorityCount = 4

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the Priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Rank returns the ordinal of the priority, from 0 (low) to 3 (critical).
// Invalid priorities rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	case PriorityCritical:
		return 3
	default:
		return 1
	}
}

package repository

import (
	"context"

	"perimeter/internal/domain/entity"
)

// SettingsRepository defines the persistence interface for the singleton
// settings objects: style preferences, the Do Not Disturb state, and the
// always-authorization flag mirrored from the platform.
//
// Load methods return sensible defaults instead of an error when nothing has
// been saved yet.
type SettingsRepository interface {
	// LoadPreferences retrieves the saved style preferences, or the factory
	// defaults when none exist.
	LoadPreferences(ctx context.Context) (*entity.NotificationStylePreferences, error)

	// SavePreferences replaces the saved style preferences.
	SavePreferences(ctx context.Context, prefs *entity.NotificationStylePreferences) error

	// LoadDoNotDisturb retrieves the saved Do Not Disturb state, or the
	// disabled state when none exists.
	LoadDoNotDisturb(ctx context.Context) (*entity.DoNotDisturbState, error)

	// SaveDoNotDisturb replaces the saved Do Not Disturb state.
	SaveDoNotDisturb(ctx context.Context, state *entity.DoNotDisturbState) error

	// LoadMonitoringAuthorized retrieves the always-authorization flag,
	// defaulting to false when never saved.
	LoadMonitoringAuthorized(ctx context.Context) (bool, error)

	// SaveMonitoringAuthorized replaces the always-authorization flag.
	SaveMonitoringAuthorized(ctx context.Context, authorized bool) error
}

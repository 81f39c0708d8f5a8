package model

import "time"

// The settings tables hold exactly one row each, keyed by a fixed ID.
// Saves are upserts on that key.
const SingletonRowID = 1

// NotificationPreferencesModel is the GORM-specific struct for the
// 'notification_preferences' table.
type NotificationPreferencesModel struct {
	ID                int       `gorm:"primary_key"`
	DefaultPriority   string    `gorm:"type:varchar(20);not null;default:'medium'"`
	Overrides         []string  `gorm:"type:jsonb;serializer:json"`
	SoundEnabled      bool      `gorm:"not null;default:true"`
	HapticEnabled     bool      `gorm:"not null;default:true"`
	QuietHoursEnabled bool      `gorm:"not null;default:false"`
	QuietHoursStart   int       `gorm:"not null;default:1320"`
	QuietHoursEnd     int       `gorm:"not null;default:420"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferencesModel) TableName() string {
	return "notification_preferences"
}

// DoNotDisturbModel is the GORM-specific struct for the 'do_not_disturb_states' table.
type DoNotDisturbModel struct {
	ID        int    `gorm:"primary_key"`
	Duration  string `gorm:"type:varchar(20);not null;default:'off'"`
	Enabled   bool   `gorm:"not null;default:false"`
	EndsAt    *time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoNotDisturbModel) TableName() string {
	return "do_not_disturb_states"
}

// MonitoringSettingsModel is the GORM-specific struct for the
// 'monitoring_settings' table, mirroring the platform authorization state.
type MonitoringSettingsModel struct {
	ID         int  `gorm:"primary_key"`
	Authorized bool `gorm:"not null;default:false"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MonitoringSettingsModel) TableName() string {
	return "monitoring_settings"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ThrottleStateModel is the GORM-specific struct for the 'geofence_throttle_states' table.
// One row per geofence, created lazily on the first recorded notification.
type ThrottleStateModel struct {
	GeofenceID         uuid.UUID `gorm:"type:uuid;primary_key"`
	DailyCount         int       `gorm:"not null;default:0"`
	TotalCount         int       `gorm:"not null;default:0"`
	LastNotificationAt *time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ThrottleStateModel) TableName() string {
	return "geofence_throttle_states"
}

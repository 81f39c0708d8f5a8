package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRecordModel is the GORM-specific struct for the 'delivery_records' table.
// Append-only audit log of engine decisions.
type DeliveryRecordModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GeofenceID    uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_geofence_decided,priority:1"`
	EventKind     string    `gorm:"type:varchar(10);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	Priority      string    `gorm:"type:varchar(20);not null"`
	MessageID     string    `gorm:"type:varchar(255)"`
	FailureReason string    `gorm:"type:text"`
	DecidedAt     time.Time `gorm:"not null;index:idx_delivery_geofence_decided,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}

// Package model contains the GORM-specific structs mapping domain entities
// to PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// It represents a user-defined circular region with its notification rules.
type GeofenceModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Latitude         float64   `gorm:"type:decimal(10,7);not null"`
	Longitude        float64   `gorm:"type:decimal(10,7);not null"`
	RadiusMeters     float64   `gorm:"type:decimal(10,2);not null"`
	NotifyOnEntry    bool      `gorm:"not null;default:true"`
	NotifyOnExit     bool      `gorm:"not null;default:false"`
	IsEnabled        bool      `gorm:"not null;default:true;index"`
	NotificationMode string    `gorm:"type:varchar(20);not null;default:'normal'"`
	Priority         string    `gorm:"type:varchar(20);not null;default:'medium'"`
	EntryMessage     string    `gorm:"type:text"`
	ExitMessage      string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}

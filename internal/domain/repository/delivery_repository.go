package repository

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryRepository defines the persistence interface for the delivery audit log.
type DeliveryRepository interface {
	// CreateDeliveryRecord appends one decision record.
	CreateDeliveryRecord(ctx context.Context, record *entity.DeliveryRecord) error

	// FindRecentDeliveries retrieves the most recent records for a geofence,
	// newest first.
	FindRecentDeliveries(ctx context.Context, geofenceID uuid.UUID, limit int) ([]*entity.DeliveryRecord, error)
}

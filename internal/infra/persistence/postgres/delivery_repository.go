package postgres

import (
	"context"

	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/domain/repository"
	"perimeter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateDeliveryRecord appends one decision record.
func (repo *deliveryRepository) CreateDeliveryRecord(ctx context.Context, record *entity.DeliveryRecord) error {
	recordM := fromDeliveryDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery record")
	}

	record.ID = recordM.ID

	return nil
}

// FindRecentDeliveries retrieves the most recent records for a geofence, newest first.
func (repo *deliveryRepository) FindRecentDeliveries(ctx context.Context, geofenceID uuid.UUID, limit int) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("geofence_id = ?", geofenceID).
		Order("decided_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent deliveries")
	}

	records := make([]*entity.DeliveryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toDeliveryDomain(recordM))
	}

	return records, nil
}

// toDeliveryDomain converts a GORM model to a domain entity.
func toDeliveryDomain(data *model.DeliveryRecordModel) *entity.DeliveryRecord {
	return &entity.DeliveryRecord{
		ID:            data.ID,
		GeofenceID:    data.GeofenceID,
		EventKind:     entity.EventKind(data.EventKind),
		Status:        entity.DeliveryStatus(data.Status),
		Priority:      entity.Priority(data.Priority),
		MessageID:     data.MessageID,
		FailureReason: data.FailureReason,
		DecidedAt:     data.DecidedAt,
	}
}

// fromDeliveryDomain converts a domain entity to a GORM model.
func fromDeliveryDomain(data *entity.DeliveryRecord) *model.DeliveryRecordModel {
	return &model.DeliveryRecordModel{
		ID:            data.ID,
		GeofenceID:    data.GeofenceID,
		EventKind:     data.EventKind.String(),
		Status:        data.Status.String(),
		Priority:      data.Priority.String(),
		MessageID:     data.MessageID,
		FailureReason: data.FailureReason,
		DecidedAt:     data.DecidedAt,
	}
}

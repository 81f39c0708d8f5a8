// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateGeofence persists a new geofence definition.
func (repo *geofenceRepository) CreateGeofence(ctx context.Context, geofence *entity.GeofenceDefinition) error {
	geofenceM := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).Create(geofenceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A retried create with the same ID. The row already exists.
			return domainerrors.ErrValidationFailed.WrapMessage("geofence already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required geofence information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence")
	}

	// Update the entity with generated values
	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// UpdateGeofence persists changes to an existing definition.
func (repo *geofenceRepository) UpdateGeofence(ctx context.Context, geofence *entity.GeofenceDefinition) error {
	geofenceM := fromGeofenceDomain(geofence)

	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ?", geofence.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(geofenceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update geofence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// DeleteGeofence removes a definition by its ID.
func (repo *geofenceRepository) DeleteGeofence(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GeofenceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete geofence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// FindGeofenceByID retrieves a definition by its unique ID.
func (repo *geofenceRepository) FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceDefinition, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&geofenceM), nil
}

// ListGeofences retrieves all definitions ordered by creation time, oldest first.
// The ID tiebreak keeps the order stable for rows created in the same instant.
func (repo *geofenceRepository) ListGeofences(ctx context.Context) ([]*entity.GeofenceDefinition, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	geofences := make([]*entity.GeofenceDefinition, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// CountGeofences returns the number of stored definitions.
func (repo *geofenceRepository) CountGeofences(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count geofences")
	}

	return count, nil
}

// toGeofenceDomain converts a GORM model to a domain entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.GeofenceDefinition {
	return &entity.GeofenceDefinition{
		ID:               data.ID,
		Name:             data.Name,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		RadiusMeters:     data.RadiusMeters,
		NotifyOnEntry:    data.NotifyOnEntry,
		NotifyOnExit:     data.NotifyOnExit,
		IsEnabled:        data.IsEnabled,
		NotificationMode: entity.NotificationMode(data.NotificationMode),
		Priority:         entity.Priority(data.Priority),
		EntryMessage:     data.EntryMessage,
		ExitMessage:      data.ExitMessage,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromGeofenceDomain converts a domain entity to a GORM model.
func fromGeofenceDomain(data *entity.GeofenceDefinition) *model.GeofenceModel {
	return &model.GeofenceModel{
		ID:               data.ID,
		Name:             data.Name,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		RadiusMeters:     data.RadiusMeters,
		NotifyOnEntry:    data.NotifyOnEntry,
		NotifyOnExit:     data.NotifyOnExit,
		IsEnabled:        data.IsEnabled,
		NotificationMode: data.NotificationMode.String(),
		Priority:         data.Priority.String(),
		EntryMessage:     data.EntryMessage,
		ExitMessage:      data.ExitMessage,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

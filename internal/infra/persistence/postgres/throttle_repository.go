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
	"gorm.io/gorm/clause"
)

// throttleRepository implements the repository.ThrottleRepository interface.
type throttleRepository struct {
	db *gorm.DB
}

// NewThrottleRepository is the constructor for throttleRepository.
func NewThrottleRepository(db *gorm.DB) repository.ThrottleRepository {
	return &throttleRepository{
		db: db,
	}
}

// FindThrottleState retrieves the state for a geofence.
func (repo *throttleRepository) FindThrottleState(ctx context.Context, geofenceID uuid.UUID) (*entity.ThrottleState, error) {
	var stateM model.ThrottleStateModel

	if err := repo.db.WithContext(ctx).
		Where("geofence_id = ?", geofenceID).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThrottleStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find throttle state")
	}

	return toThrottleDomain(&stateM), nil
}

// SaveThrottleState creates or replaces the state for a geofence.
func (repo *throttleRepository) SaveThrottleState(ctx context.Context, state *entity.ThrottleState) error {
	stateM := fromThrottleDomain(state)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "geofence_id"}},
			UpdateAll: true,
		}).
		Create(stateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save throttle state")
	}

	return nil
}

// DeleteThrottleState removes the state for a geofence.
func (repo *throttleRepository) DeleteThrottleState(ctx context.Context, geofenceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("geofence_id = ?", geofenceID).
		Delete(&model.ThrottleStateModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete throttle state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrThrottleStateNotFound
	}

	return nil
}

// toThrottleDomain converts a GORM model to a domain entity.
func toThrottleDomain(data *model.ThrottleStateModel) *entity.ThrottleState {
	return &entity.ThrottleState{
		GeofenceID:         data.GeofenceID,
		DailyCount:         data.DailyCount,
		TotalCount:         data.TotalCount,
		LastNotificationAt: data.LastNotificationAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromThrottleDomain converts a domain entity to a GORM model.
func fromThrottleDomain(data *entity.ThrottleState) *model.ThrottleStateModel {
	return &model.ThrottleStateModel{
		GeofenceID:         data.GeofenceID,
		DailyCount:         data.DailyCount,
		TotalCount:         data.TotalCount,
		LastNotificationAt: data.LastNotificationAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

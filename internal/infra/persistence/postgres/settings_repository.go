package postgres

import (
	"context"

	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/domain/repository"
	"perimeter/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
// Each settings object lives in a single fixed-key row; saves are upserts.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// LoadPreferences retrieves the saved style preferences, or the factory
// defaults when none exist.
func (repo *settingsRepository) LoadPreferences(ctx context.Context) (*entity.NotificationStylePreferences, error) {
	var prefsM model.NotificationPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SingletonRowID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DefaultStylePreferences(), nil
		}

		return nil, errors.Wrap(err, "failed to load preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// SavePreferences replaces the saved style preferences.
func (repo *settingsRepository) SavePreferences(ctx context.Context, prefs *entity.NotificationStylePreferences) error {
	prefsM := fromPreferencesDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(prefsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save preferences")
	}

	return nil
}

// LoadDoNotDisturb retrieves the saved Do Not Disturb state, or the disabled
// state when none exists.
func (repo *settingsRepository) LoadDoNotDisturb(ctx context.Context) (*entity.DoNotDisturbState, error) {
	var stateM model.DoNotDisturbModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SingletonRowID).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.OffDoNotDisturbState(), nil
		}

		return nil, errors.Wrap(err, "failed to load do not disturb state")
	}

	return &entity.DoNotDisturbState{
		Duration:  entity.DNDDuration(stateM.Duration),
		Enabled:   stateM.Enabled,
		EndsAt:    stateM.EndsAt,
		UpdatedAt: stateM.UpdatedAt,
	}, nil
}

// SaveDoNotDisturb replaces the saved Do Not Disturb state.
func (repo *settingsRepository) SaveDoNotDisturb(ctx context.Context, state *entity.DoNotDisturbState) error {
	stateM := &model.DoNotDisturbModel{
		ID:        model.SingletonRowID,
		Duration:  state.Duration.String(),
		Enabled:   state.Enabled,
		EndsAt:    state.EndsAt,
		UpdatedAt: state.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(stateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save do not disturb state")
	}

	return nil
}

// LoadMonitoringAuthorized retrieves the always-authorization flag,
// defaulting to false when never saved.
func (repo *settingsRepository) LoadMonitoringAuthorized(ctx context.Context) (bool, error) {
	var settingsM model.MonitoringSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SingletonRowID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to load monitoring settings")
	}

	return settingsM.Authorized, nil
}

// SaveMonitoringAuthorized replaces the always-authorization flag.
func (repo *settingsRepository) SaveMonitoringAuthorized(ctx context.Context, authorized bool) error {
	settingsM := &model.MonitoringSettingsModel{
		ID:         model.SingletonRowID,
		Authorized: authorized,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save monitoring settings")
	}

	return nil
}

// toPreferencesDomain converts a GORM model to a domain entity.
func toPreferencesDomain(data *model.NotificationPreferencesModel) *entity.NotificationStylePreferences {
	prefs := &entity.NotificationStylePreferences{
		DefaultPriority:   entity.Priority(data.DefaultPriority),
		SoundEnabled:      data.SoundEnabled,
		HapticEnabled:     data.HapticEnabled,
		QuietHoursEnabled: data.QuietHoursEnabled,
		QuietHoursStart:   data.QuietHoursStart,
		QuietHoursEnd:     data.QuietHoursEnd,
		UpdatedAt:         data.UpdatedAt,
	}
	for i, override := range data.Overrides {
		if i >= entity.PriorityCount {
			break
		}
		prefs.Overrides[i] = entity.Priority(override)
	}

	return prefs
}

// fromPreferencesDomain converts a domain entity to a GORM model.
func fromPreferencesDomain(data *entity.NotificationStylePreferences) *model.NotificationPreferencesModel {
	overrides := make([]string, entity.PriorityCount)
	for i, override := range data.Overrides {
		overrides[i] = override.String()
	}

	return &model.NotificationPreferencesModel{
		ID:                model.SingletonRowID,
		DefaultPriority:   data.DefaultPriority.String(),
		Overrides:         overrides,
		SoundEnabled:      data.SoundEnabled,
		HapticEnabled:     data.HapticEnabled,
		QuietHoursEnabled: data.QuietHoursEnabled,
		QuietHoursStart:   data.QuietHoursStart,
		QuietHoursEnd:     data.QuietHoursEnd,
		UpdatedAt:         data.UpdatedAt,
	}
}

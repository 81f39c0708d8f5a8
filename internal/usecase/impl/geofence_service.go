package impl

import (
	"context"
	"log/slog"
	"strings"

	"perimeter/config"
	deliverycontext "perimeter/internal/delivery/context"
	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type geofenceService struct {
	logger       *slog.Logger
	geofenceRepo repository.GeofenceRepository
	lifecycle    usecase.LifecycleUsecase
	publisher    service.EventPublisher
	clock        service.Clock
	config       *config.Config
}

// GeofenceServiceParams holds dependencies for GeofenceService, injected by Fx.
type GeofenceServiceParams struct {
	fx.In

	Logger       *slog.Logger
	GeofenceRepo repository.GeofenceRepository
	Lifecycle    usecase.LifecycleUsecase
	Publisher    service.EventPublisher
	Clock        service.Clock
	Config       *config.Config
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	return &geofenceService{
		logger:       params.Logger,
		geofenceRepo: params.GeofenceRepo,
		lifecycle:    params.Lifecycle,
		publisher:    params.Publisher,
		clock:        params.Clock,
		config:       params.Config,
	}
}

// CreateGeofence validates and persists a new definition
func (s *geofenceService) CreateGeofence(ctx context.Context, input *usecase.GeofenceInput) (*entity.GeofenceDefinition, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	definition := &entity.GeofenceDefinition{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(input.Name),
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		RadiusMeters:     input.RadiusMeters,
		NotifyOnEntry:    input.NotifyOnEntry,
		NotifyOnExit:     input.NotifyOnExit,
		IsEnabled:        input.IsEnabled,
		NotificationMode: normalizeMode(input.NotificationMode),
		Priority:         normalizePriority(input.Priority),
		EntryMessage:     input.EntryMessage,
		ExitMessage:      input.ExitMessage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.geofenceRepo.CreateGeofence(ctx, definition); err != nil {
		return nil, errors.Wrap(err, "failed to create geofence")
	}

	s.afterMutation(ctx)

	return definition, nil
}

// UpdateGeofence validates and persists changes to an existing definition
func (s *geofenceService) UpdateGeofence(ctx context.Context, id uuid.UUID, input *usecase.GeofenceInput) (*entity.GeofenceDefinition, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	definition, err := s.findGeofence(ctx, id)
	if err != nil {
		return nil, err
	}

	definition.Name = strings.TrimSpace(input.Name)
	definition.Latitude = input.Latitude
	definition.Longitude = input.Longitude
	definition.RadiusMeters = input.RadiusMeters
	definition.NotifyOnEntry = input.NotifyOnEntry
	definition.NotifyOnExit = input.NotifyOnExit
	definition.IsEnabled = input.IsEnabled
	definition.NotificationMode = normalizeMode(input.NotificationMode)
	definition.Priority = normalizePriority(input.Priority)
	definition.EntryMessage = input.EntryMessage
	definition.ExitMessage = input.ExitMessage
	definition.UpdatedAt = s.clock.Now()

	if err := s.geofenceRepo.UpdateGeofence(ctx, definition); err != nil {
		return nil, errors.Wrap(err, "failed to update geofence")
	}

	s.afterMutation(ctx)

	return definition, nil
}

// DeleteGeofence removes a definition
func (s *geofenceService) DeleteGeofence(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findGeofence(ctx, id); err != nil {
		return err
	}

	if err := s.geofenceRepo.DeleteGeofence(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete geofence")
	}

	s.afterMutation(ctx)

	return nil
}

// SetGeofenceEnabled flips the enabled flag. Disabling an admitted geofence
// frees its monitoring slot; enabling one competes for a slot on the next
// reconcile.
func (s *geofenceService) SetGeofenceEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*entity.GeofenceDefinition, error) {
	definition, err := s.findGeofence(ctx, id)
	if err != nil {
		return nil, err
	}

	if definition.IsEnabled != enabled {
		definition.IsEnabled = enabled
		definition.UpdatedAt = s.clock.Now()

		if err := s.geofenceRepo.UpdateGeofence(ctx, definition); err != nil {
			return nil, errors.Wrap(err, "failed to update geofence")
		}

		s.afterMutation(ctx)
	}

	return definition, nil
}

// GetGeofence retrieves one definition by ID
func (s *geofenceService) GetGeofence(ctx context.Context, id uuid.UUID) (*entity.GeofenceDefinition, error) {
	return s.findGeofence(ctx, id)
}

// ListGeofences retrieves all definitions, oldest first
func (s *geofenceService) ListGeofences(ctx context.Context) ([]*entity.GeofenceDefinition, error) {
	definitions, err := s.geofenceRepo.ListGeofences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	return definitions, nil
}

func (s *geofenceService) findGeofence(ctx context.Context, id uuid.UUID) (*entity.GeofenceDefinition, error) {
	definition, err := s.geofenceRepo.FindGeofenceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence")
	}

	return definition, nil
}

// afterMutation reconciles the local monitored set and tells the worker to
// do the same. Neither step may fail the mutation itself: the definition is
// already persisted and the next periodic pass will converge.
func (s *geofenceService) afterMutation(ctx context.Context) {
	if _, err := s.lifecycle.Reconcile(ctx); err != nil {
		s.logger.ErrorContext(ctx, "reconcile after geofence mutation failed",
			slog.String("error", err.Error()))
	}

	event := &service.EngineEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.EngineEventGeofenceMutated,
	}
	if err := s.publisher.PublishEngineEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish geofence mutation event",
			slog.String("error", err.Error()))
	}
}

func (s *geofenceService) validateInput(input *usecase.GeofenceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrGeofenceNameRequired
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return domainerrors.ErrGeofenceInvalidCoordinates
	}
	if input.RadiusMeters < s.config.Engine.MinRadiusMeters || input.RadiusMeters > s.config.Engine.MaxRadiusMeters {
		return domainerrors.ErrGeofenceInvalidRadius
	}
	if input.NotificationMode != "" && !input.NotificationMode.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown notification mode: " + input.NotificationMode.String())
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return domainerrors.ErrInvalidPriority
	}

	return nil
}

func normalizeMode(mode entity.NotificationMode) entity.NotificationMode {
	if mode == "" {
		return entity.NotificationModeNormal
	}

	return mode
}

func normalizePriority(priority entity.Priority) entity.Priority {
	if priority == "" {
		return entity.PriorityMedium
	}

	return priority
}

package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"perimeter/config"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type lifecycleService struct {
	logger       *slog.Logger
	geofenceRepo repository.GeofenceRepository
	settingsRepo repository.SettingsRepository
	monitor      service.RegionMonitor
	ceiling      int

	mu         sync.Mutex
	registered map[uuid.UUID]*entity.GeofenceDefinition
	authorized bool
	authLoaded bool
}

// LifecycleServiceParams holds dependencies for LifecycleService, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	Logger       *slog.Logger
	GeofenceRepo repository.GeofenceRepository
	SettingsRepo repository.SettingsRepository
	Monitor      service.RegionMonitor
	Config       *config.Config
}

// NewLifecycleService creates a new lifecycle service instance
func NewLifecycleService(params LifecycleServiceParams) usecase.LifecycleUsecase {
	return &lifecycleService{
		logger:       params.Logger,
		geofenceRepo: params.GeofenceRepo,
		settingsRepo: params.SettingsRepo,
		monitor:      params.Monitor,
		ceiling:      params.Config.Engine.RegionCeiling,
		registered:   make(map[uuid.UUID]*entity.GeofenceDefinition),
	}
}

// Reconcile recomputes the target monitored set and applies the deltas.
// The pass is idempotent: running it twice in a row applies nothing the
// second time.
func (s *lifecycleService) Reconcile(ctx context.Context) (*usecase.ReconcileResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reconcileLocked(ctx)
}

func (s *lifecycleService) reconcileLocked(ctx context.Context) (*usecase.ReconcileResult, error) {
	authorized, err := s.loadAuthorizedLocked(ctx)
	if err != nil {
		return nil, err
	}

	definitions, err := s.geofenceRepo.ListGeofences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	enabled := make([]*entity.GeofenceDefinition, 0, len(definitions))
	for _, def := range definitions {
		if def.IsEnabled {
			enabled = append(enabled, def)
		}
	}

	// Admission is oldest-created first so long-standing geofences keep
	// their slot when a new one pushes the set over the ceiling. The ID
	// tiebreak keeps the order stable for definitions created in the same
	// instant.
	sort.SliceStable(enabled, func(i, j int) bool {
		if enabled[i].CreatedAt.Equal(enabled[j].CreatedAt) {
			return enabled[i].ID.String() < enabled[j].ID.String()
		}

		return enabled[i].CreatedAt.Before(enabled[j].CreatedAt)
	})

	target := make(map[uuid.UUID]*entity.GeofenceDefinition, len(enabled))
	overflow := 0
	if authorized {
		admitted := enabled
		if len(admitted) > s.ceiling {
			overflow = len(admitted) - s.ceiling
			admitted = admitted[:s.ceiling]
		}
		for _, def := range admitted {
			target[def.ID] = def
		}
	}

	result := &usecase.ReconcileResult{
		Added:      []uuid.UUID{},
		Removed:    []uuid.UUID{},
		Enabled:    len(enabled),
		Overflow:   overflow,
		Authorized: authorized,
	}

	// Stop registrations that fell out of the target set, and registrations
	// whose region parameters changed: platform regions are immutable once
	// registered, so a moved or resized geofence is stopped here and started
	// again below with the new parameters.
	for id, current := range s.registered {
		wanted, ok := target[id]
		if ok && current.SameRegionAs(wanted) {
			continue
		}

		if err := s.monitor.StopMonitoring(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "failed to stop monitoring region",
				slog.String("geofence_id", id.String()),
				slog.String("error", err.Error()))

			continue
		}

		delete(s.registered, id)
		result.Removed = append(result.Removed, id)
	}

	// Start what the target set has and the mirror does not. A start failure
	// is logged and left out of the mirror so the next pass retries it.
	for id, wanted := range target {
		if _, ok := s.registered[id]; ok {
			continue
		}

		if err := s.monitor.StartMonitoring(ctx, id, wanted.Latitude, wanted.Longitude, wanted.RadiusMeters); err != nil {
			s.logger.WarnContext(ctx, "failed to start monitoring region",
				slog.String("geofence_id", id.String()),
				slog.String("geofence_name", wanted.Name),
				slog.String("error", err.Error()))

			continue
		}

		s.registered[id] = wanted
		result.Added = append(result.Added, id)
	}

	sortUUIDs(result.Added)
	sortUUIDs(result.Removed)
	result.Monitored = len(s.registered)

	if overflow > 0 {
		s.logger.WarnContext(ctx, "enabled geofences exceed region ceiling",
			slog.Int("enabled", len(enabled)),
			slog.Int("ceiling", s.ceiling),
			slog.Int("overflow", overflow))
	}

	return result, nil
}

// Resolve looks up the definition behind a raw region identifier.
// A miss is not an error: the definition was deleted after the platform
// queued the event, and the caller drops it.
func (s *lifecycleService) Resolve(ctx context.Context, regionID uuid.UUID) (*entity.GeofenceDefinition, error) {
	definition, err := s.geofenceRepo.FindGeofenceByID(ctx, regionID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve region")
	}

	return definition, nil
}

// SetAuthorized persists the authorization transition and reconciles.
// Revocation empties the monitored set; a re-grant restores it from the
// store on the same call.
func (s *lifecycleService) SetAuthorized(ctx context.Context, authorized bool) (*usecase.ReconcileResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.SaveMonitoringAuthorized(ctx, authorized); err != nil {
		return nil, errors.Wrap(err, "failed to save authorization state")
	}

	s.authorized = authorized
	s.authLoaded = true
	s.monitor.SetAuthorized(authorized)

	if !authorized {
		// The platform already dropped its registrations on revocation; the
		// mirror must not claim otherwise or a later re-grant would skip
		// the re-registration.
		s.registered = make(map[uuid.UUID]*entity.GeofenceDefinition)
	}

	return s.reconcileLocked(ctx)
}

func (s *lifecycleService) loadAuthorizedLocked(ctx context.Context) (bool, error) {
	if s.authLoaded {
		return s.authorized, nil
	}

	authorized, err := s.settingsRepo.LoadMonitoringAuthorized(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load authorization state")
	}

	s.authorized = authorized
	s.authLoaded = true
	s.monitor.SetAuthorized(authorized)

	return authorized, nil
}

func sortUUIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}

package impl

import (
	"context"
	"testing"
	"time"

	"perimeter/config"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	mockRepo "perimeter/internal/mocks/repository"
	mockSvc "perimeter/internal/mocks/service"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifecycleServiceFixtures holds all test dependencies for lifecycle service tests.
type lifecycleServiceFixtures struct {
	service      usecase.LifecycleUsecase
	geofenceRepo *mockRepo.MockGeofenceRepository
	settingsRepo *mockRepo.MockSettingsRepository
	monitor      *mockSvc.MockRegionMonitor
}

func createTestLifecycleService(t *testing.T, ceiling int) lifecycleServiceFixtures {
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	monitor := mockSvc.NewMockRegionMonitor(t)

	svc := NewLifecycleService(LifecycleServiceParams{
		Logger:       testLogger(),
		GeofenceRepo: geofenceRepo,
		SettingsRepo: settingsRepo,
		Monitor:      monitor,
		Config:       &config.Config{Engine: &config.EngineConfig{RegionCeiling: ceiling}},
	})

	return lifecycleServiceFixtures{
		service:      svc,
		geofenceRepo: geofenceRepo,
		settingsRepo: settingsRepo,
		monitor:      monitor,
	}
}

func enabledGeofence(name string, createdAt time.Time) *entity.GeofenceDefinition {
	return &entity.GeofenceDefinition{
		ID:            uuid.New(),
		Name:          name,
		Latitude:      25.03,
		Longitude:     121.56,
		RadiusMeters:  100,
		NotifyOnEntry: true,
		IsEnabled:     true,
		Priority:      entity.PriorityMedium,
		CreatedAt:     createdAt,
	}
}

func TestLifecycleService_Reconcile_AdmitsOldestFirst(t *testing.T) {
	fx := createTestLifecycleService(t, 2)

	ctx := context.Background()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	oldest := enabledGeofence("Home", base)
	middle := enabledGeofence("Work", base.Add(time.Hour))
	newest := enabledGeofence("Gym", base.Add(2*time.Hour))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(true, nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	// Returned out of order; admission sorts by creation time.
	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{newest, oldest, middle}, nil)

	fx.monitor.EXPECT().
		StartMonitoring(ctx, oldest.ID, oldest.Latitude, oldest.Longitude, oldest.RadiusMeters).
		Return(nil)
	fx.monitor.EXPECT().
		StartMonitoring(ctx, middle.ID, middle.Latitude, middle.Longitude, middle.RadiusMeters).
		Return(nil)

	result, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Monitored)
	assert.Equal(t, 3, result.Enabled)
	assert.Equal(t, 1, result.Overflow)
	assert.True(t, result.Authorized)
	assert.Len(t, result.Added, 2)
	assert.NotContains(t, result.Added, newest.ID, "the newest geofence loses the slot race")
}

func TestLifecycleService_Reconcile_Idempotent(t *testing.T) {
	fx := createTestLifecycleService(t, 20)

	ctx := context.Background()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	home := enabledGeofence("Home", base)
	work := enabledGeofence("Work", base.Add(time.Hour))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(true, nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{home, work}, nil).
		Twice()

	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, home.RadiusMeters).
		Return(nil).
		Once()
	fx.monitor.EXPECT().
		StartMonitoring(ctx, work.ID, work.Latitude, work.Longitude, work.RadiusMeters).
		Return(nil).
		Once()

	first, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Len(t, first.Added, 2)

	// A second pass over the same store applies nothing.
	second, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, second.Added)
	assert.Empty(t, second.Removed)
	assert.Equal(t, 2, second.Monitored)
}

func TestLifecycleService_Reconcile_Unauthorized(t *testing.T) {
	fx := createTestLifecycleService(t, 20)

	ctx := context.Background()
	home := enabledGeofence("Home", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(false, nil)
	fx.monitor.EXPECT().SetAuthorized(false).Return()

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{home}, nil)

	// Without authorization nothing is registered, no matter what is enabled.
	result, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Monitored)
	assert.Equal(t, 1, result.Enabled)
	assert.False(t, result.Authorized)
}

func TestLifecycleService_Reconcile_DisablePromotesNext(t *testing.T) {
	fx := createTestLifecycleService(t, 1)

	ctx := context.Background()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	home := enabledGeofence("Home", base)
	work := enabledGeofence("Work", base.Add(time.Hour))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(true, nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{home, work}, nil).
		Once()
	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, home.RadiusMeters).
		Return(nil).
		Once()

	first, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Overflow)

	// Disabling the admitted geofence frees its slot for the waiting one.
	disabledHome := *home
	disabledHome.IsEnabled = false

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{&disabledHome, work}, nil).
		Once()
	fx.monitor.EXPECT().StopMonitoring(ctx, home.ID).Return(nil)
	fx.monitor.EXPECT().
		StartMonitoring(ctx, work.ID, work.Latitude, work.Longitude, work.RadiusMeters).
		Return(nil).
		Once()

	second, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{home.ID}, second.Removed)
	assert.Equal(t, []uuid.UUID{work.ID}, second.Added)
	assert.Equal(t, 1, second.Monitored)
	assert.Equal(t, 0, second.Overflow)
}

func TestLifecycleService_Reconcile_ParamChangeRestartsRegion(t *testing.T) {
	fx := createTestLifecycleService(t, 20)

	ctx := context.Background()
	home := enabledGeofence("Home", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(true, nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{home}, nil).
		Once()
	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, 100.0).
		Return(nil).
		Once()

	_, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)

	// The region grew; the registration is immutable and must be replaced.
	resized := *home
	resized.RadiusMeters = 250

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{&resized}, nil).
		Once()
	fx.monitor.EXPECT().StopMonitoring(ctx, home.ID).Return(nil)
	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, 250.0).
		Return(nil).
		Once()

	result, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{home.ID}, result.Removed)
	assert.Equal(t, []uuid.UUID{home.ID}, result.Added)
}

func TestLifecycleService_SetAuthorized_RevokeAndRegrant(t *testing.T) {
	fx := createTestLifecycleService(t, 20)

	ctx := context.Background()
	home := enabledGeofence("Home", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(true, nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{home}, nil).
		Times(3)

	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, home.RadiusMeters).
		Return(nil).
		Twice()

	first, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Monitored)

	// Revocation empties the set. The platform already dropped its own
	// registrations, so no StopMonitoring calls are expected.
	fx.settingsRepo.EXPECT().SaveMonitoringAuthorized(ctx, false).Return(nil)
	fx.monitor.EXPECT().SetAuthorized(false).Return()

	revoked, err := fx.service.SetAuthorized(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, revoked.Monitored)
	assert.False(t, revoked.Authorized)

	// Re-granting restores the set from the store on the same call.
	fx.settingsRepo.EXPECT().SaveMonitoringAuthorized(ctx, true).Return(nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	regranted, err := fx.service.SetAuthorized(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, regranted.Monitored)
	assert.Equal(t, []uuid.UUID{home.ID}, regranted.Added)
}

func TestLifecycleService_Reconcile_StartFailureRetried(t *testing.T) {
	fx := createTestLifecycleService(t, 20)

	ctx := context.Background()
	home := enabledGeofence("Home", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	fx.settingsRepo.EXPECT().LoadMonitoringAuthorized(ctx).Return(true, nil)
	fx.monitor.EXPECT().SetAuthorized(true).Return()

	fx.geofenceRepo.EXPECT().
		ListGeofences(ctx).
		Return([]*entity.GeofenceDefinition{home}, nil).
		Twice()

	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, home.RadiusMeters).
		Return(service.ErrRegionLimitExceeded).
		Once()
	fx.monitor.EXPECT().
		StartMonitoring(ctx, home.ID, home.Latitude, home.Longitude, home.RadiusMeters).
		Return(nil).
		Once()

	// The failure is logged and left out of the mirror.
	first, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Monitored)

	// The next pass picks it up again.
	second, err := fx.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Monitored)
	assert.Equal(t, []uuid.UUID{home.ID}, second.Added)
}

func TestLifecycleService_Resolve_MissIsNotAnError(t *testing.T) {
	fx := createTestLifecycleService(t, 20)

	ctx := context.Background()
	unknown := uuid.New()

	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(ctx, unknown).
		Return(nil, repository.ErrGeofenceNotFound)

	definition, err := fx.service.Resolve(ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, definition)
}

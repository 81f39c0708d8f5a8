package impl

import (
	"context"
	"testing"
	"time"

	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/repository"
	mockRepo "perimeter/internal/mocks/repository"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// throttleServiceFixtures holds all test dependencies for throttle service tests.
type throttleServiceFixtures struct {
	service      usecase.ThrottleUsecase
	throttleRepo *mockRepo.MockThrottleRepository
	clock        *fakeClock
}

func createTestThrottleService(t *testing.T) throttleServiceFixtures {
	throttleRepo := mockRepo.NewMockThrottleRepository(t)
	clock := &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	service := NewThrottleService(throttleRepo, clock)

	return throttleServiceFixtures{
		service:      service,
		throttleRepo: throttleRepo,
		clock:        clock,
	}
}

func testGeofence(mode entity.NotificationMode) *entity.GeofenceDefinition {
	return &entity.GeofenceDefinition{
		ID:               uuid.New(),
		Name:             "Home",
		NotifyOnEntry:    true,
		NotifyOnExit:     true,
		IsEnabled:        true,
		NotificationMode: mode,
		Priority:         entity.PriorityMedium,
	}
}

func TestThrottleService_ShouldNotify_NeverNotified(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	def := testGeofence(entity.NotificationModeNormal)

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, def.ID).
		Return(nil, repository.ErrThrottleStateNotFound)

	eligible, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestThrottleService_ShouldNotify_DirectionGate(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	def := testGeofence(entity.NotificationModeNormal)
	def.NotifyOnExit = false

	// The gate rejects before any state lookup, so no repository expectation.
	eligible, err := fx.service.ShouldNotify(ctx, def, entity.EventKindExit)
	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestThrottleService_ShouldNotify_Cooldowns(t *testing.T) {
	tests := []struct {
		name     string
		mode     entity.NotificationMode
		elapsed  time.Duration
		eligible bool
	}{
		{"normal inside cooldown", entity.NotificationModeNormal, 29 * time.Minute, false},
		{"normal at cooldown", entity.NotificationModeNormal, 30 * time.Minute, true},
		{"frequent inside cooldown", entity.NotificationModeFrequent, 14 * time.Minute, false},
		{"frequent past cooldown", entity.NotificationModeFrequent, 16 * time.Minute, true},
		{"quiet inside cooldown", entity.NotificationModeQuiet, 119 * time.Minute, false},
		{"quiet past cooldown", entity.NotificationModeQuiet, 121 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestThrottleService(t)

			ctx := context.Background()
			def := testGeofence(tt.mode)
			lastAt := fx.clock.Now().Add(-tt.elapsed)
			state := &entity.ThrottleState{
				GeofenceID:         def.ID,
				DailyCount:         1,
				TotalCount:         1,
				LastNotificationAt: &lastAt,
			}

			fx.throttleRepo.EXPECT().
				FindThrottleState(ctx, def.ID).
				Return(state, nil)

			eligible, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
			require.NoError(t, err)
			assert.Equal(t, tt.eligible, eligible)
		})
	}
}

func TestThrottleService_ShouldNotify_OnceDaily_SameDay(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	def := testGeofence(entity.NotificationModeOnceDaily)
	lastAt := fx.clock.Now().Add(-10 * time.Hour) // same calendar day
	state := &entity.ThrottleState{
		GeofenceID:         def.ID,
		DailyCount:         1,
		TotalCount:         5,
		LastNotificationAt: &lastAt,
	}

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, def.ID).
		Return(state, nil)

	eligible, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestThrottleService_ShouldNotify_OnceDaily_Rollover(t *testing.T) {
	fx := createTestThrottleService(t)

	// Last send at 23:50 yesterday, asking at 00:10 today. Only minutes have
	// passed but the calendar day changed, so the geofence is eligible again.
	fx.clock.now = time.Date(2026, 3, 15, 0, 10, 0, 0, time.UTC)

	ctx := context.Background()
	def := testGeofence(entity.NotificationModeOnceDaily)
	lastAt := time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC)
	state := &entity.ThrottleState{
		GeofenceID:         def.ID,
		DailyCount:         1,
		TotalCount:         5,
		LastNotificationAt: &lastAt,
	}

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, def.ID).
		Return(state, nil)

	eligible, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestThrottleService_ShouldNotify_IsPure(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	def := testGeofence(entity.NotificationModeNormal)
	lastAt := fx.clock.Now().Add(-10 * time.Minute)
	state := &entity.ThrottleState{
		GeofenceID:         def.ID,
		DailyCount:         1,
		TotalCount:         1,
		LastNotificationAt: &lastAt,
	}

	// Asking twice reads state twice and writes nothing.
	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, def.ID).
		Return(state, nil).
		Twice()

	first, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
	require.NoError(t, err)
	second, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.False(t, first)
}

func TestThrottleService_RecordNotificationSent_FirstSend(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	geofenceID := uuid.New()

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, geofenceID).
		Return(nil, repository.ErrThrottleStateNotFound)

	fx.throttleRepo.EXPECT().
		SaveThrottleState(ctx, mock.AnythingOfType("*entity.ThrottleState")).
		Run(func(ctx context.Context, state *entity.ThrottleState) {
			assert.Equal(t, geofenceID, state.GeofenceID)
			assert.Equal(t, 1, state.DailyCount)
			assert.Equal(t, 1, state.TotalCount)
			require.NotNil(t, state.LastNotificationAt)
			assert.Equal(t, fx.clock.Now(), *state.LastNotificationAt)
		}).
		Return(nil)

	err := fx.service.RecordNotificationSent(ctx, geofenceID)
	require.NoError(t, err)
}

func TestThrottleService_RecordNotificationSent_DailyRollover(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	geofenceID := uuid.New()
	lastAt := fx.clock.Now().Add(-24 * time.Hour) // yesterday
	state := &entity.ThrottleState{
		GeofenceID:         geofenceID,
		DailyCount:         3,
		TotalCount:         7,
		LastNotificationAt: &lastAt,
	}

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, geofenceID).
		Return(state, nil)

	fx.throttleRepo.EXPECT().
		SaveThrottleState(ctx, mock.AnythingOfType("*entity.ThrottleState")).
		Run(func(ctx context.Context, saved *entity.ThrottleState) {
			assert.Equal(t, 1, saved.DailyCount, "daily counter rolls over on the first send of a new day")
			assert.Equal(t, 8, saved.TotalCount, "total counter is monotonic")
		}).
		Return(nil)

	err := fx.service.RecordNotificationSent(ctx, geofenceID)
	require.NoError(t, err)
}

func TestThrottleService_GetStats_VirtualRollover(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	geofenceID := uuid.New()
	lastAt := fx.clock.Now().Add(-30 * time.Hour)
	state := &entity.ThrottleState{
		GeofenceID:         geofenceID,
		DailyCount:         4,
		TotalCount:         9,
		LastNotificationAt: &lastAt,
	}

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, geofenceID).
		Return(state, nil)

	stats, err := fx.service.GetStats(ctx, geofenceID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DailyCount, "yesterday's counter reads as zero today")
	assert.Equal(t, 9, stats.TotalCount)
}

func TestThrottleService_ResetState_NotFoundTolerated(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	geofenceID := uuid.New()

	fx.throttleRepo.EXPECT().
		DeleteThrottleState(ctx, geofenceID).
		Return(repository.ErrThrottleStateNotFound)

	err := fx.service.ResetState(ctx, geofenceID)
	require.NoError(t, err)
}

func TestThrottleService_ShouldNotify_RepositoryError(t *testing.T) {
	fx := createTestThrottleService(t)

	ctx := context.Background()
	def := testGeofence(entity.NotificationModeNormal)

	fx.throttleRepo.EXPECT().
		FindThrottleState(ctx, def.ID).
		Return(nil, errors.New("connection refused"))

	eligible, err := fx.service.ShouldNotify(ctx, def, entity.EventKindEntry)
	require.Error(t, err)
	assert.False(t, eligible)
}

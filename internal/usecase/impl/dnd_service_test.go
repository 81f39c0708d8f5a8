package impl

import (
	"context"
	"testing"
	"time"

	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	mockRepo "perimeter/internal/mocks/repository"
	"perimeter/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dndServiceFixtures holds all test dependencies for Do Not Disturb service tests.
type dndServiceFixtures struct {
	service      usecase.DNDUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	clock        *fakeClock
}

func createTestDNDService(t *testing.T) dndServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	clock := &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	service := NewDNDService(settingsRepo, clock)

	return dndServiceFixtures{
		service:      service,
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

func TestDNDService_Set_OneHour(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		SaveDoNotDisturb(ctx, mock.AnythingOfType("*entity.DoNotDisturbState")).
		Return(nil)

	state, err := fx.service.Set(ctx, entity.DNDDurationOneHour, nil)
	require.NoError(t, err)
	assert.True(t, state.Enabled)
	require.NotNil(t, state.EndsAt)
	assert.Equal(t, fx.clock.Now().Add(time.Hour), *state.EndsAt)

	// Active inside the window.
	active, err := fx.service.IsActive(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	// Inactive once the hour has passed.
	fx.clock.Advance(61 * time.Minute)
	active, err = fx.service.IsActive(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestDNDService_Set_UntilRequiresEndDate(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()

	_, err := fx.service.Set(ctx, entity.DNDDurationUntil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDNDEndDateRequired)
}

func TestDNDService_Set_UntilRejectsPastEndDate(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()
	past := fx.clock.Now().Add(-time.Minute)

	_, err := fx.service.Set(ctx, entity.DNDDurationUntil, &past)
	assert.ErrorIs(t, err, domainerrors.ErrDNDEndDateInPast)
}

func TestDNDService_Set_InvalidDuration(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()

	_, err := fx.service.Set(ctx, entity.DNDDuration("forever"), nil)
	assert.ErrorIs(t, err, ErrInvalidDNDDuration)
}

func TestDNDService_Set_PermanentHasNoEndDate(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		SaveDoNotDisturb(ctx, mock.AnythingOfType("*entity.DoNotDisturbState")).
		Return(nil)

	state, err := fx.service.Set(ctx, entity.DNDDurationPermanent, nil)
	require.NoError(t, err)
	assert.True(t, state.Enabled)
	assert.Nil(t, state.EndsAt)

	// Permanent never expires on its own.
	fx.clock.Advance(1000 * time.Hour)
	active, err := fx.service.IsActive(ctx)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestDNDService_Status_ExpiredReadsAsOff(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()
	endsAt := fx.clock.Now().Add(-time.Minute)
	stored := &entity.DoNotDisturbState{
		Duration: entity.DNDDurationTwoHours,
		Enabled:  true,
		EndsAt:   &endsAt,
	}

	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(stored, nil)

	// The store still says enabled, but the read normalizes the expired state.
	state, err := fx.service.Status(ctx)
	require.NoError(t, err)
	assert.False(t, state.Enabled)
	assert.Equal(t, entity.DNDDurationOff, state.Duration)
}

func TestDNDService_ShouldSuppress_CriticalBypass(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()
	stored := &entity.DoNotDisturbState{
		Duration: entity.DNDDurationPermanent,
		Enabled:  true,
	}

	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(stored, nil)

	suppress, err := fx.service.ShouldSuppress(ctx, entity.PriorityHigh)
	require.NoError(t, err)
	assert.True(t, suppress)

	// Critical is the single bypass; the state is not even consulted.
	suppress, err = fx.service.ShouldSuppress(ctx, entity.PriorityCritical)
	require.NoError(t, err)
	assert.False(t, suppress)
}

func TestDNDService_NormalizeExpired_PersistsOff(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()
	endsAt := fx.clock.Now().Add(-time.Minute)
	stored := &entity.DoNotDisturbState{
		Duration: entity.DNDDurationOneHour,
		Enabled:  true,
		EndsAt:   &endsAt,
	}

	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(stored, nil)

	fx.settingsRepo.EXPECT().
		SaveDoNotDisturb(ctx, mock.AnythingOfType("*entity.DoNotDisturbState")).
		Run(func(ctx context.Context, state *entity.DoNotDisturbState) {
			assert.False(t, state.Enabled)
			assert.Equal(t, entity.DNDDurationOff, state.Duration)
		}).
		Return(nil)

	err := fx.service.NormalizeExpired(ctx)
	require.NoError(t, err)
}

func TestDNDService_NormalizeExpired_ActiveStateUntouched(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()
	endsAt := fx.clock.Now().Add(time.Hour)
	stored := &entity.DoNotDisturbState{
		Duration: entity.DNDDurationTwoHours,
		Enabled:  true,
		EndsAt:   &endsAt,
	}

	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(stored, nil)

	// Still active, nothing to persist.
	err := fx.service.NormalizeExpired(ctx)
	require.NoError(t, err)
}

func TestDNDService_Refresh_DropsCache(t *testing.T) {
	fx := createTestDNDService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil).
		Twice()

	_, err := fx.service.Status(ctx)
	require.NoError(t, err)

	// Without Refresh the second Status would hit the cache.
	fx.service.Refresh()

	_, err = fx.service.Status(ctx)
	require.NoError(t, err)
}

package impl

import (
	"context"
	"testing"
	"time"

	"perimeter/config"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/repository"
	mockRepo "perimeter/internal/mocks/repository"
	mockSvc "perimeter/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pipelineFixtures holds all test dependencies for event pipeline tests.
type pipelineFixtures struct {
	pipeline     *eventPipeline
	geofenceRepo *mockRepo.MockGeofenceRepository
	settingsRepo *mockRepo.MockSettingsRepository
	throttleRepo *mockRepo.MockThrottleRepository
	deliveryRepo *mockRepo.MockDeliveryRepository
	monitor      *mockSvc.MockRegionMonitor
	sender       *mockSvc.MockNotificationSender
	clock        *fakeClock
}

func createTestPipeline(t *testing.T, queueSize int) pipelineFixtures {
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	throttleRepo := mockRepo.NewMockThrottleRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	monitor := mockSvc.NewMockRegionMonitor(t)
	sender := mockSvc.NewMockNotificationSender(t)
	clock := &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}

	cfg := &config.Config{Engine: &config.EngineConfig{
		RegionCeiling:  20,
		EventQueueSize: queueSize,
	}}

	lifecycle := NewLifecycleService(LifecycleServiceParams{
		Logger:       testLogger(),
		GeofenceRepo: geofenceRepo,
		SettingsRepo: settingsRepo,
		Monitor:      monitor,
		Config:       cfg,
	})
	throttle := NewThrottleService(throttleRepo, clock)
	escalation := NewEscalationService(EscalationServiceParams{
		Logger:       testLogger(),
		SettingsRepo: settingsRepo,
		DeliveryRepo: deliveryRepo,
		DND:          NewDNDService(settingsRepo, clock),
		Throttle:     throttle,
		Sender:       sender,
		Clock:        clock,
	})

	pipeline := NewEventPipeline(EventPipelineParams{
		Logger:       testLogger(),
		Lifecycle:    lifecycle,
		Throttle:     throttle,
		Escalation:   escalation,
		DeliveryRepo: deliveryRepo,
		Clock:        clock,
		Config:       cfg,
	}).(*eventPipeline)

	return pipelineFixtures{
		pipeline:     pipeline,
		geofenceRepo: geofenceRepo,
		settingsRepo: settingsRepo,
		throttleRepo: throttleRepo,
		deliveryRepo: deliveryRepo,
		monitor:      monitor,
		sender:       sender,
		clock:        clock,
	}
}

// expectStatefulThrottle backs the throttle repository mock with an in-memory
// row so consecutive decisions see each other's writes.
func expectStatefulThrottle(fx pipelineFixtures, geofenceID uuid.UUID) {
	var stored *entity.ThrottleState

	fx.throttleRepo.EXPECT().
		FindThrottleState(mock.Anything, geofenceID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.ThrottleState, error) {
			if stored == nil {
				return nil, repository.ErrThrottleStateNotFound
			}
			copied := *stored

			return &copied, nil
		})
	fx.throttleRepo.EXPECT().
		SaveThrottleState(mock.Anything, mock.AnythingOfType("*entity.ThrottleState")).
		RunAndReturn(func(ctx context.Context, state *entity.ThrottleState) error {
			copied := *state
			stored = &copied

			return nil
		})
}

func TestEventPipeline_HomeArrivalScenario(t *testing.T) {
	fx := createTestPipeline(t, 8)

	ctx := context.Background()
	home := enabledGeofence("Home", fx.clock.Now().Add(-24*time.Hour))
	home.NotificationMode = entity.NotificationModeNormal

	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(mock.Anything, home.ID).
		Return(home, nil)

	fx.settingsRepo.EXPECT().
		LoadPreferences(mock.Anything).
		Return(entity.DefaultStylePreferences(), nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(mock.Anything).
		Return(entity.OffDoNotDisturbState(), nil)

	expectStatefulThrottle(fx, home.ID)

	fx.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg", nil)

	var statuses []entity.DeliveryStatus
	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(mock.Anything, mock.AnythingOfType("*entity.DeliveryRecord")).
		RunAndReturn(func(ctx context.Context, record *entity.DeliveryRecord) error {
			statuses = append(statuses, record.Status)

			return nil
		})

	entryAt := func() *entity.RegionEvent {
		return &entity.RegionEvent{GeofenceID: home.ID, Kind: entity.EventKindEntry, OccurredAt: fx.clock.Now()}
	}

	// Arriving home notifies.
	fx.pipeline.process(ctx, entryAt())

	// Stepping out to the mailbox and back ten minutes later stays quiet.
	fx.clock.Advance(10 * time.Minute)
	fx.pipeline.process(ctx, entryAt())

	// Arriving again past the 30 minute cooldown notifies.
	fx.clock.Advance(21 * time.Minute)
	fx.pipeline.process(ctx, entryAt())

	assert.Equal(t, []entity.DeliveryStatus{
		entity.DeliveryStatusDelivered,
		entity.DeliveryStatusThrottled,
		entity.DeliveryStatusDelivered,
	}, statuses)
}

func TestEventPipeline_DirectionGateIsSilent(t *testing.T) {
	fx := createTestPipeline(t, 8)

	ctx := context.Background()
	entryOnly := enabledGeofence("Home", fx.clock.Now())
	entryOnly.NotifyOnEntry = true
	entryOnly.NotifyOnExit = false

	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(mock.Anything, entryOnly.ID).
		Return(entryOnly, nil)

	// An unwanted direction is dropped without a throttle lookup and
	// without an audit row.
	fx.pipeline.process(ctx, &entity.RegionEvent{
		GeofenceID: entryOnly.ID,
		Kind:       entity.EventKindExit,
		OccurredAt: fx.clock.Now(),
	})
}

func TestEventPipeline_DropsUnknownRegion(t *testing.T) {
	fx := createTestPipeline(t, 8)

	ctx := context.Background()
	deleted := uuid.New()

	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(mock.Anything, deleted).
		Return(nil, repository.ErrGeofenceNotFound)

	// The definition was deleted after the platform queued the event.
	fx.pipeline.process(ctx, &entity.RegionEvent{
		GeofenceID: deleted,
		Kind:       entity.EventKindEntry,
		OccurredAt: fx.clock.Now(),
	})
}

func TestEventPipeline_DropsDisabledGeofence(t *testing.T) {
	fx := createTestPipeline(t, 8)

	ctx := context.Background()
	disabled := enabledGeofence("Home", fx.clock.Now())
	disabled.IsEnabled = false

	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(mock.Anything, disabled.ID).
		Return(disabled, nil)

	fx.pipeline.process(ctx, &entity.RegionEvent{
		GeofenceID: disabled.ID,
		Kind:       entity.EventKindEntry,
		OccurredAt: fx.clock.Now(),
	})
}

func TestEventPipeline_EnqueueRejectsWhenFull(t *testing.T) {
	fx := createTestPipeline(t, 1)

	event := &entity.RegionEvent{GeofenceID: uuid.New(), Kind: entity.EventKindEntry}

	require.NoError(t, fx.pipeline.Enqueue(event))
	assert.Equal(t, 1, fx.pipeline.QueueDepth())

	// The consumer is not running, so the second enqueue overflows instead
	// of blocking.
	err := fx.pipeline.Enqueue(event)
	assert.ErrorIs(t, err, ErrEventQueueFull)
}

func TestEventPipeline_StopDrainsQueue(t *testing.T) {
	fx := createTestPipeline(t, 8)

	home := enabledGeofence("Home", fx.clock.Now().Add(-24*time.Hour))

	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(mock.Anything, home.ID).
		Return(home, nil)
	fx.settingsRepo.EXPECT().
		LoadPreferences(mock.Anything).
		Return(entity.DefaultStylePreferences(), nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(mock.Anything).
		Return(entity.OffDoNotDisturbState(), nil)
	expectStatefulThrottle(fx, home.ID)
	fx.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg", nil)

	delivered := 0
	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(mock.Anything, mock.AnythingOfType("*entity.DeliveryRecord")).
		RunAndReturn(func(ctx context.Context, record *entity.DeliveryRecord) error {
			if record.Status == entity.DeliveryStatusDelivered {
				delivered++
			}

			return nil
		})

	require.NoError(t, fx.pipeline.Enqueue(&entity.RegionEvent{
		GeofenceID: home.ID,
		Kind:       entity.EventKindEntry,
		OccurredAt: fx.clock.Now(),
	}))

	fx.pipeline.Start(context.Background())

	// Stop waits for the consumer to drain, so the event is decided by the
	// time it returns.
	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, fx.pipeline.Stop(stopCtx))

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 0, fx.pipeline.QueueDepth())
}

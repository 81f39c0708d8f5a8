package impl

import (
	"context"
	"testing"
	"time"

	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	mockRepo "perimeter/internal/mocks/repository"
	mockSvc "perimeter/internal/mocks/service"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// escalationServiceFixtures holds all test dependencies for escalation service tests.
type escalationServiceFixtures struct {
	service      usecase.EscalationUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	deliveryRepo *mockRepo.MockDeliveryRepository
	throttleRepo *mockRepo.MockThrottleRepository
	sender       *mockSvc.MockNotificationSender
	clock        *fakeClock
}

func createTestEscalationService(t *testing.T) escalationServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	throttleRepo := mockRepo.NewMockThrottleRepository(t)
	sender := mockSvc.NewMockNotificationSender(t)
	clock := &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}

	svc := NewEscalationService(EscalationServiceParams{
		Logger:       testLogger(),
		SettingsRepo: settingsRepo,
		DeliveryRepo: deliveryRepo,
		DND:          NewDNDService(settingsRepo, clock),
		Throttle:     NewThrottleService(throttleRepo, clock),
		Sender:       sender,
		Clock:        clock,
	})

	return escalationServiceFixtures{
		service:      svc,
		settingsRepo: settingsRepo,
		deliveryRepo: deliveryRepo,
		throttleRepo: throttleRepo,
		sender:       sender,
		clock:        clock,
	}
}

func testCandidate(priority entity.Priority) *usecase.NotificationCandidate {
	id := uuid.New()

	return &usecase.NotificationCandidate{
		GeofenceID: id,
		Kind:       entity.EventKindEntry,
		Identifier: "geofence-" + id.String() + "-entry",
		Title:      "Home",
		Body:       "You have arrived at Home",
		Priority:   priority,
	}
}

// expectRecordSend wires the throttle stamp that follows a successful send.
func expectRecordSend(fx escalationServiceFixtures, geofenceID uuid.UUID) {
	fx.throttleRepo.EXPECT().
		FindThrottleState(mock.Anything, geofenceID).
		Return(nil, repository.ErrThrottleStateNotFound)
	fx.throttleRepo.EXPECT().
		SaveThrottleState(mock.Anything, mock.AnythingOfType("*entity.ThrottleState")).
		Return(nil)
}

func TestEscalationService_Deliver_Success(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityMedium)

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(entity.DefaultStylePreferences(), nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Run(func(ctx context.Context, n *service.OutboundNotification) {
			assert.Equal(t, candidate.Identifier, n.Identifier)
			assert.True(t, n.Sound)
			assert.True(t, n.Haptic)
		}).
		Return("msg-1", nil)

	expectRecordSend(fx, candidate.GeofenceID)

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Return(nil)

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDelivered, outcome.Status)
	assert.Equal(t, entity.PriorityMedium, outcome.EffectivePriority)
	assert.Equal(t, "msg-1", outcome.MessageID)
}

func TestEscalationService_Deliver_DNDSuppresses(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityHigh)

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(entity.DefaultStylePreferences(), nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(&entity.DoNotDisturbState{Duration: entity.DNDDurationPermanent, Enabled: true}, nil)

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Run(func(ctx context.Context, record *entity.DeliveryRecord) {
			assert.Equal(t, entity.DeliveryStatusSuppressed, record.Status)
		}).
		Return(nil)

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusSuppressed, outcome.Status)
}

func TestEscalationService_Deliver_CriticalBypassesDND(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityCritical)

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(entity.DefaultStylePreferences(), nil)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg-2", nil)

	expectRecordSend(fx, candidate.GeofenceID)

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Return(nil)

	// Do Not Disturb is never consulted for Critical, so no
	// LoadDoNotDisturb expectation.
	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDelivered, outcome.Status)

	// The bypass keys off the intrinsic priority; the delivery style still
	// resolves to the default since no override matches.
	assert.Equal(t, entity.PriorityMedium, outcome.EffectivePriority)
}

func TestEscalationService_Deliver_PriorityOverride(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityMedium)

	prefs := entity.DefaultStylePreferences()
	prefs.Overrides[entity.PriorityMedium.Rank()] = entity.PriorityHigh

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(prefs, nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg-3", nil)

	expectRecordSend(fx, candidate.GeofenceID)

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Return(nil)

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityHigh, outcome.EffectivePriority)
}

func TestEscalationService_Deliver_LowPriorityIsSilent(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityLow)

	// The override keeps the low style; without one the candidate would
	// resolve to the default and deliver with sound.
	prefs := entity.DefaultStylePreferences()
	prefs.Overrides[entity.PriorityLow.Rank()] = entity.PriorityLow

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(prefs, nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Run(func(ctx context.Context, n *service.OutboundNotification) {
			// Sound and haptics are stripped even though the user's
			// preferences allow them.
			assert.False(t, n.Sound)
			assert.False(t, n.Haptic)
		}).
		Return("msg-4", nil)

	expectRecordSend(fx, candidate.GeofenceID)

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Return(nil)

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.False(t, outcome.Sound)
	assert.False(t, outcome.Haptic)
}

func TestEscalationService_Deliver_QuietHoursDefersAndFlushes(t *testing.T) {
	fx := createTestEscalationService(t)

	// 23:30 inside a 22:00-07:00 window that wraps past midnight.
	fx.clock.now = time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityMedium)

	prefs := entity.DefaultStylePreferences()
	prefs.QuietHoursEnabled = true

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(prefs, nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil)

	recorded := make([]entity.DeliveryStatus, 0, 2)
	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Run(func(ctx context.Context, record *entity.DeliveryRecord) {
			recorded = append(recorded, record.Status)
		}).
		Return(nil).
		Twice()

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDeferred, outcome.Status)
	require.NotNil(t, outcome.ReleaseAt)
	assert.Equal(t, time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC), *outcome.ReleaseAt)
	assert.Equal(t, 1, fx.service.PendingDeferred())

	// Still parked while the window is open.
	flushed, err := fx.service.FlushDueDeferred(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, flushed)

	// The window closed, the candidate is released and delivered.
	fx.clock.now = time.Date(2026, 3, 15, 7, 1, 0, 0, time.UTC)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg-5", nil)
	expectRecordSend(fx, candidate.GeofenceID)

	flushed, err = fx.service.FlushDueDeferred(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flushed)
	assert.Equal(t, 0, fx.service.PendingDeferred())
	assert.Equal(t, []entity.DeliveryStatus{entity.DeliveryStatusDeferred, entity.DeliveryStatusDelivered}, recorded)
}

func TestEscalationService_QuietHoursCoalescesRepeats(t *testing.T) {
	fx := createTestEscalationService(t)

	// 23:00 inside a 22:00-07:00 window. The device crosses the same
	// boundary twice during the night, well inside the 30 minute cooldown.
	fx.clock.now = time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityMedium)

	prefs := entity.DefaultStylePreferences()
	prefs.QuietHoursEnabled = true

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(prefs, nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil)

	recorded := make([]entity.DeliveryStatus, 0, 3)
	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Run(func(ctx context.Context, record *entity.DeliveryRecord) {
			recorded = append(recorded, record.Status)
		}).
		Return(nil)

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDeferred, outcome.Status)

	fx.clock.Advance(10 * time.Minute)

	// The repeat is deferred too, but it collapses into the parked one.
	outcome, err = fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDeferred, outcome.Status)
	assert.Equal(t, 1, fx.service.PendingDeferred())

	// At window end exactly one notification goes out.
	fx.clock.now = time.Date(2026, 3, 15, 7, 1, 0, 0, time.UTC)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg-7", nil).
		Once()
	expectRecordSend(fx, candidate.GeofenceID)

	flushed, err := fx.service.FlushDueDeferred(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flushed)
	assert.Equal(t, []entity.DeliveryStatus{
		entity.DeliveryStatusDeferred,
		entity.DeliveryStatusDeferred,
		entity.DeliveryStatusDelivered,
	}, recorded)
}

func TestEscalationService_Deliver_CriticalBypassesQuietHours(t *testing.T) {
	fx := createTestEscalationService(t)

	fx.clock.now = time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityCritical)

	prefs := entity.DefaultStylePreferences()
	prefs.QuietHoursEnabled = true

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(prefs, nil)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Return("msg-6", nil)

	expectRecordSend(fx, candidate.GeofenceID)

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Return(nil)

	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDelivered, outcome.Status)
}

func TestEscalationService_Deliver_SendFailureRecorded(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	candidate := testCandidate(entity.PriorityMedium)

	fx.settingsRepo.EXPECT().
		LoadPreferences(ctx).
		Return(entity.DefaultStylePreferences(), nil)
	fx.settingsRepo.EXPECT().
		LoadDoNotDisturb(ctx).
		Return(entity.OffDoNotDisturbState(), nil)

	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Return("", errors.New("permission revoked"))

	fx.deliveryRepo.EXPECT().
		CreateDeliveryRecord(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Run(func(ctx context.Context, record *entity.DeliveryRecord) {
			assert.Equal(t, entity.DeliveryStatusFailed, record.Status)
			assert.Equal(t, "permission revoked", record.FailureReason)
		}).
		Return(nil)

	// No throttle expectations: a failed send never stamps the cooldown.
	outcome, err := fx.service.Deliver(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusFailed, outcome.Status)
	assert.Equal(t, "permission revoked", outcome.Reason)
}

func TestEscalationService_UpdatePreferences_Validation(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()

	invalid := entity.DefaultStylePreferences()
	invalid.DefaultPriority = entity.Priority("urgent")
	_, err := fx.service.UpdatePreferences(ctx, invalid)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPriority)

	badWindow := entity.DefaultStylePreferences()
	badWindow.QuietHoursEnd = 1440
	_, err = fx.service.UpdatePreferences(ctx, badWindow)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuietHours)

	badOverride := entity.DefaultStylePreferences()
	badOverride.Overrides[0] = entity.Priority("loud")
	_, err = fx.service.UpdatePreferences(ctx, badOverride)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPriority)
}

func TestEscalationService_UpdatePreferences_Persists(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()
	prefs := entity.DefaultStylePreferences()
	prefs.SoundEnabled = false

	fx.settingsRepo.EXPECT().
		SavePreferences(ctx, mock.AnythingOfType("*entity.NotificationStylePreferences")).
		Return(nil)

	saved, err := fx.service.UpdatePreferences(ctx, prefs)
	require.NoError(t, err)
	assert.False(t, saved.SoundEnabled)
	assert.Equal(t, fx.clock.Now(), saved.UpdatedAt)

	// The cache serves subsequent reads without hitting the store.
	loaded, err := fx.service.Preferences(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.SoundEnabled)
}

func TestEscalationService_ResetPreferences(t *testing.T) {
	fx := createTestEscalationService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		SavePreferences(ctx, mock.AnythingOfType("*entity.NotificationStylePreferences")).
		Run(func(ctx context.Context, prefs *entity.NotificationStylePreferences) {
			assert.Equal(t, entity.PriorityMedium, prefs.DefaultPriority)
			assert.True(t, prefs.SoundEnabled)
		}).
		Return(nil)

	prefs, err := fx.service.ResetPreferences(ctx)
	require.NoError(t, err)
	assert.True(t, prefs.HapticEnabled)
	assert.False(t, prefs.QuietHoursEnabled)
}

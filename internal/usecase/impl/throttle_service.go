package impl

import (
	"context"

	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type throttleService struct {
	throttleRepo repository.ThrottleRepository
	clock        service.Clock
}

// NewThrottleService creates a new throttle service instance
func NewThrottleService(
	throttleRepo repository.ThrottleRepository,
	clock service.Clock,
) usecase.ThrottleUsecase {
	return &throttleService{
		throttleRepo: throttleRepo,
		clock:        clock,
	}
}

// ShouldNotify decides whether a region event may produce a notification.
// The decision reads state but never writes it, so asking twice in a row
// gives the same answer.
func (s *throttleService) ShouldNotify(ctx context.Context, definition *entity.GeofenceDefinition, kind entity.EventKind) (bool, error) {
	if definition == nil {
		return false, nil
	}

	// Direction gate comes before any state lookup.
	if !definition.WantsEvent(kind) {
		return false, nil
	}

	state, err := s.throttleRepo.FindThrottleState(ctx, definition.ID)
	if err != nil {
		if errors.Is(err, repository.ErrThrottleStateNotFound) {
			// Never notified before, always eligible.
			return true, nil
		}

		return false, errors.Wrap(err, "failed to find throttle state")
	}

	now := s.clock.Now()

	if definition.NotificationMode == entity.NotificationModeOnceDaily {
		// One per local calendar day. The counter is read through the
		// virtual rollover so a stale stored value from yesterday does
		// not block today's first notification.
		return state.EffectiveDailyCount(now) == 0, nil
	}

	if state.LastNotificationAt == nil {
		return true, nil
	}

	elapsed := now.Sub(*state.LastNotificationAt)

	return elapsed >= definition.NotificationMode.Cooldown(), nil
}

// RecordNotificationSent stamps a successful send into the throttle state.
// The daily counter rolls over here, not in ShouldNotify, so the stored
// state only changes when a notification actually went out.
func (s *throttleService) RecordNotificationSent(ctx context.Context, geofenceID uuid.UUID) error {
	now := s.clock.Now()

	state, err := s.throttleRepo.FindThrottleState(ctx, geofenceID)
	if err != nil {
		if !errors.Is(err, repository.ErrThrottleStateNotFound) {
			return errors.Wrap(err, "failed to find throttle state")
		}
		state = &entity.ThrottleState{GeofenceID: geofenceID}
	}

	if state.LastNotificationAt != nil && !entity.SameLocalDay(*state.LastNotificationAt, now, now.Location()) {
		state.DailyCount = 0
	}

	state.DailyCount++
	state.TotalCount++
	state.LastNotificationAt = &now
	state.UpdatedAt = now

	if err := s.throttleRepo.SaveThrottleState(ctx, state); err != nil {
		return errors.Wrap(err, "failed to save throttle state")
	}

	return nil
}

// GetStats returns the throttle state for diagnostics. The daily counter is
// reported through the virtual rollover so the caller sees today's count.
func (s *throttleService) GetStats(ctx context.Context, geofenceID uuid.UUID) (*entity.ThrottleState, error) {
	state, err := s.throttleRepo.FindThrottleState(ctx, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrThrottleStateNotFound) {
			return &entity.ThrottleState{GeofenceID: geofenceID}, nil
		}

		return nil, errors.Wrap(err, "failed to find throttle state")
	}

	state.DailyCount = state.EffectiveDailyCount(s.clock.Now())

	return state, nil
}

// ResetState clears the throttle state for one geofence.
func (s *throttleService) ResetState(ctx context.Context, geofenceID uuid.UUID) error {
	if err := s.throttleRepo.DeleteThrottleState(ctx, geofenceID); err != nil {
		if errors.Is(err, repository.ErrThrottleStateNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete throttle state")
	}

	return nil
}

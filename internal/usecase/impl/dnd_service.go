package impl

import (
	"context"
	"sync"
	"time"

	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"

	"github.com/pkg/errors"
)

// ErrInvalidDNDDuration is returned when an unknown duration value is requested
var ErrInvalidDNDDuration = errors.New("invalid do not disturb duration")

type dndService struct {
	settingsRepo repository.SettingsRepository
	clock        service.Clock

	mu    sync.Mutex
	state *entity.DoNotDisturbState // Lazily loaded; nil until the first read.
}

// NewDNDService creates a new Do Not Disturb service instance
func NewDNDService(
	settingsRepo repository.SettingsRepository,
	clock service.Clock,
) usecase.DNDUsecase {
	return &dndService{
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// Set activates or deactivates Do Not Disturb.
func (s *dndService) Set(ctx context.Context, duration entity.DNDDuration, endsAt *time.Time) (*entity.DoNotDisturbState, error) {
	if !duration.IsValid() {
		return nil, ErrInvalidDNDDuration
	}

	now := s.clock.Now()
	state := &entity.DoNotDisturbState{
		Duration:  duration,
		Enabled:   duration != entity.DNDDurationOff,
		UpdatedAt: now,
	}

	switch duration {
	case entity.DNDDurationOff, entity.DNDDurationPermanent:
		// No end time.
	case entity.DNDDurationUntil:
		if endsAt == nil {
			return nil, domainerrors.ErrDNDEndDateRequired
		}
		if !endsAt.After(now) {
			return nil, domainerrors.ErrDNDEndDateInPast
		}
		end := *endsAt
		state.EndsAt = &end
	default:
		end := now.Add(duration.Interval())
		state.EndsAt = &end
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.SaveDoNotDisturb(ctx, state); err != nil {
		return nil, errors.Wrap(err, "failed to save do not disturb state")
	}
	s.state = state

	copied := *state

	return &copied, nil
}

// Status returns the current state. An expired timed state reads as off even
// before the normalization tick has persisted the flip.
func (s *dndService) Status(ctx context.Context) (*entity.DoNotDisturbState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	if state.Enabled && !state.ActiveAt(s.clock.Now()) {
		off := entity.OffDoNotDisturbState()
		off.UpdatedAt = state.UpdatedAt

		return off, nil
	}

	copied := *state

	return &copied, nil
}

// IsActive reports whether suppression is in effect right now.
func (s *dndService) IsActive(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(ctx)
	if err != nil {
		return false, err
	}

	return state.ActiveAt(s.clock.Now()), nil
}

// ShouldSuppress reports whether a notification must be dropped.
// Critical is the single bypass.
func (s *dndService) ShouldSuppress(ctx context.Context, priority entity.Priority) (bool, error) {
	if priority == entity.PriorityCritical {
		return false, nil
	}

	return s.IsActive(ctx)
}

// NormalizeExpired persists the off state once a timed activation has run
// out. Runs on a ticker so the stored state catches up within a minute of
// expiry; reads are already expiry-aware, the persisted flip just keeps the
// store honest.
func (s *dndService) NormalizeExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}

	if !state.Enabled || state.ActiveAt(s.clock.Now()) {
		return nil
	}

	off := entity.OffDoNotDisturbState()
	off.UpdatedAt = s.clock.Now()

	if err := s.settingsRepo.SaveDoNotDisturb(ctx, off); err != nil {
		return errors.Wrap(err, "failed to normalize do not disturb state")
	}
	s.state = off

	return nil
}

// Refresh drops the cached state so the next read hits the store.
func (s *dndService) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = nil
}

func (s *dndService) loadLocked(ctx context.Context) (*entity.DoNotDisturbState, error) {
	if s.state != nil {
		return s.state, nil
	}

	state, err := s.settingsRepo.LoadDoNotDisturb(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load do not disturb state")
	}
	s.state = state

	return state, nil
}

package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"perimeter/internal/domain/entity"
	domainerrors "perimeter/internal/domain/errors"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minutesPerDay = 24 * 60

type deferredCandidate struct {
	candidate *usecase.NotificationCandidate
	releaseAt time.Time
}

type escalationService struct {
	logger       *slog.Logger
	settingsRepo repository.SettingsRepository
	deliveryRepo repository.DeliveryRepository
	dnd          usecase.DNDUsecase
	throttle     usecase.ThrottleUsecase
	sender       service.NotificationSender
	clock        service.Clock

	mu       sync.Mutex
	prefs    *entity.NotificationStylePreferences // Lazily loaded; nil until the first read.
	deferred []deferredCandidate
}

// EscalationServiceParams holds dependencies for EscalationService, injected by Fx.
type EscalationServiceParams struct {
	fx.In

	Logger       *slog.Logger
	SettingsRepo repository.SettingsRepository
	DeliveryRepo repository.DeliveryRepository
	DND          usecase.DNDUsecase
	Throttle     usecase.ThrottleUsecase
	Sender       service.NotificationSender
	Clock        service.Clock
}

// NewEscalationService creates a new escalation service instance
func NewEscalationService(params EscalationServiceParams) usecase.EscalationUsecase {
	return &escalationService{
		logger:       params.Logger,
		settingsRepo: params.SettingsRepo,
		deliveryRepo: params.DeliveryRepo,
		dnd:          params.DND,
		throttle:     params.Throttle,
		sender:       params.Sender,
		clock:        params.Clock,
	}
}

// Deliver applies the escalation policy to one throttle-approved candidate.
// Checks run in a fixed order: priority resolution, Do Not Disturb, quiet
// hours, then the actual send. Every path leaves a delivery record.
func (s *escalationService) Deliver(ctx context.Context, candidate *usecase.NotificationCandidate) (*usecase.DeliveryOutcome, error) {
	prefs, err := s.preferencesSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	effective := prefs.EffectivePriority(candidate.Priority)

	// The Critical bypass keys off the candidate's own priority, before
	// style resolution: an intrinsically critical notification cuts through
	// DND and quiet hours even when its delivery style resolves lower.
	suppress, err := s.dnd.ShouldSuppress(ctx, candidate.Priority)
	if err != nil {
		return nil, err
	}
	if suppress {
		outcome := &usecase.DeliveryOutcome{
			Status:            entity.DeliveryStatusSuppressed,
			EffectivePriority: effective,
			Reason:            "do not disturb active",
		}
		s.recordDecision(ctx, candidate, outcome)

		return outcome, nil
	}

	now := s.clock.Now()
	if candidate.Priority != entity.PriorityCritical && prefs.InQuietHours(minuteOfDay(now)) {
		// Quiet hours defer, they never drop. The candidate is parked until
		// the window closes and released by the flush tick. Repeats for the
		// same geofence and direction collapse into the parked candidate:
		// releasing each repeat at window end would replay a whole night of
		// events that the cooldown would have absorbed one by one.
		releaseAt := s.nextQuietHoursEnd(prefs, now)

		s.mu.Lock()
		s.parkLocked(candidate, releaseAt)
		s.mu.Unlock()

		outcome := &usecase.DeliveryOutcome{
			Status:            entity.DeliveryStatusDeferred,
			EffectivePriority: effective,
			ReleaseAt:         &releaseAt,
			Reason:            "quiet hours active",
		}
		s.recordDecision(ctx, candidate, outcome)

		return outcome, nil
	}

	return s.send(ctx, candidate, prefs, effective), nil
}

// send hands the candidate to the platform sender and records the outcome.
// Low priority deliveries are always silent; otherwise sound and haptics
// follow the user's preferences.
func (s *escalationService) send(
	ctx context.Context,
	candidate *usecase.NotificationCandidate,
	prefs *entity.NotificationStylePreferences,
	effective entity.Priority,
) *usecase.DeliveryOutcome {
	silent := effective == entity.PriorityLow

	notification := &service.OutboundNotification{
		Identifier: candidate.Identifier,
		Title:      candidate.Title,
		Body:       candidate.Body,
		Priority:   effective,
		Sound:      prefs.SoundEnabled && !silent,
		Haptic:     prefs.HapticEnabled && !silent,
	}

	messageID, err := s.sender.Send(ctx, notification)
	if err != nil {
		s.logger.ErrorContext(ctx, "notification send failed",
			slog.String("geofence_id", candidate.GeofenceID.String()),
			slog.String("error", err.Error()))

		outcome := &usecase.DeliveryOutcome{
			Status:            entity.DeliveryStatusFailed,
			EffectivePriority: effective,
			Reason:            err.Error(),
			Sound:             notification.Sound,
			Haptic:            notification.Haptic,
		}
		s.recordDecision(ctx, candidate, outcome)

		return outcome
	}

	// Throttle state is stamped only now that the send actually happened.
	if err := s.throttle.RecordNotificationSent(ctx, candidate.GeofenceID); err != nil {
		s.logger.ErrorContext(ctx, "failed to record notification send",
			slog.String("geofence_id", candidate.GeofenceID.String()),
			slog.String("error", err.Error()))
	}

	outcome := &usecase.DeliveryOutcome{
		Status:            entity.DeliveryStatusDelivered,
		EffectivePriority: effective,
		MessageID:         messageID,
		Sound:             notification.Sound,
		Haptic:            notification.Haptic,
	}
	s.recordDecision(ctx, candidate, outcome)

	return outcome
}

// Preferences returns the current style preferences.
func (s *escalationService) Preferences(ctx context.Context) (*entity.NotificationStylePreferences, error) {
	return s.preferencesSnapshot(ctx)
}

// UpdatePreferences validates and persists new style preferences.
func (s *escalationService) UpdatePreferences(ctx context.Context, prefs *entity.NotificationStylePreferences) (*entity.NotificationStylePreferences, error) {
	if !prefs.DefaultPriority.IsValid() {
		return nil, domainerrors.ErrInvalidPriority
	}
	for _, override := range prefs.Overrides {
		if override != "" && !override.IsValid() {
			return nil, domainerrors.ErrInvalidPriority
		}
	}
	if !validMinuteOfDay(prefs.QuietHoursStart) || !validMinuteOfDay(prefs.QuietHoursEnd) {
		return nil, domainerrors.ErrInvalidQuietHours
	}

	saved := *prefs
	saved.UpdatedAt = s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.SavePreferences(ctx, &saved); err != nil {
		return nil, errors.Wrap(err, "failed to save preferences")
	}
	s.prefs = &saved

	copied := saved

	return &copied, nil
}

// ResetPreferences restores the factory defaults.
func (s *escalationService) ResetPreferences(ctx context.Context) (*entity.NotificationStylePreferences, error) {
	defaults := entity.DefaultStylePreferences()
	defaults.UpdatedAt = s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.SavePreferences(ctx, defaults); err != nil {
		return nil, errors.Wrap(err, "failed to reset preferences")
	}
	s.prefs = defaults

	copied := *defaults

	return &copied, nil
}

// parkLocked defers a candidate, replacing an already-parked candidate for
// the same geofence and direction. Callers must hold s.mu.
func (s *escalationService) parkLocked(candidate *usecase.NotificationCandidate, releaseAt time.Time) {
	for i, d := range s.deferred {
		if d.candidate.GeofenceID == candidate.GeofenceID && d.candidate.Kind == candidate.Kind {
			s.deferred[i] = deferredCandidate{candidate: candidate, releaseAt: releaseAt}

			return
		}
	}
	s.deferred = append(s.deferred, deferredCandidate{candidate: candidate, releaseAt: releaseAt})
}

// FlushDueDeferred releases every deferred candidate whose quiet-hours
// window has closed. Released candidates are sent unconditionally: the
// deferral already was the policy decision, and dropping them here would
// turn "deferred" into "lost".
func (s *escalationService) FlushDueDeferred(ctx context.Context) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	var due []deferredCandidate
	remaining := s.deferred[:0]
	for _, d := range s.deferred {
		if d.releaseAt.After(now) {
			remaining = append(remaining, d)
		} else {
			due = append(due, d)
		}
	}
	s.deferred = remaining
	s.mu.Unlock()

	if len(due) == 0 {
		return 0, nil
	}

	prefs, err := s.preferencesSnapshot(ctx)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, d := range due {
		effective := prefs.EffectivePriority(d.candidate.Priority)
		outcome := s.send(ctx, d.candidate, prefs, effective)
		if outcome.Status == entity.DeliveryStatusDelivered {
			delivered++
		}
	}

	return delivered, nil
}

// PendingDeferred reports how many candidates are waiting for release.
func (s *escalationService) PendingDeferred() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.deferred)
}

// Refresh drops the cached preferences so the next read hits the store.
func (s *escalationService) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = nil
}

func (s *escalationService) preferencesSnapshot(ctx context.Context) (*entity.NotificationStylePreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefs == nil {
		prefs, err := s.settingsRepo.LoadPreferences(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load preferences")
		}
		s.prefs = prefs
	}

	copied := *s.prefs

	return &copied, nil
}

// nextQuietHoursEnd returns the first instant at or after now when the
// quiet-hours window closes.
func (s *escalationService) nextQuietHoursEnd(prefs *entity.NotificationStylePreferences, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := midnight.Add(time.Duration(prefs.QuietHoursEnd) * time.Minute)
	if !end.After(now) {
		end = end.Add(24 * time.Hour)
	}

	return end
}

func (s *escalationService) recordDecision(ctx context.Context, candidate *usecase.NotificationCandidate, outcome *usecase.DeliveryOutcome) {
	record := &entity.DeliveryRecord{
		ID:         uuid.New(),
		GeofenceID: candidate.GeofenceID,
		EventKind:  candidate.Kind,
		Status:     outcome.Status,
		Priority:   outcome.EffectivePriority,
		MessageID:  outcome.MessageID,
		DecidedAt:  s.clock.Now(),
	}
	if outcome.Status == entity.DeliveryStatusFailed {
		record.FailureReason = outcome.Reason
	}

	// An audit write must never block or fail the decision itself.
	if err := s.deliveryRepo.CreateDeliveryRecord(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "failed to write delivery record",
			slog.String("geofence_id", candidate.GeofenceID.String()),
			slog.String("status", string(outcome.Status)),
			slog.String("error", err.Error()))
	}
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func validMinuteOfDay(m int) bool {
	return m >= 0 && m < minutesPerDay
}

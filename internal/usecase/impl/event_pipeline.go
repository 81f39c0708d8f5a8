package impl

import (
	"context"
	"log/slog"
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

// ErrEventQueueFull is returned when the pipeline cannot accept more events.
// Producers drop the event instead of blocking the monitor callback.
var ErrEventQueueFull = errors.New("region event queue is full")

type eventPipeline struct {
	logger       *slog.Logger
	lifecycle    usecase.LifecycleUsecase
	throttle     usecase.ThrottleUsecase
	escalation   usecase.EscalationUsecase
	deliveryRepo repository.DeliveryRepository
	clock        service.Clock

	events chan *entity.RegionEvent
	quit   chan struct{}
	done   chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// EventPipelineParams holds dependencies for EventPipeline, injected by Fx.
type EventPipelineParams struct {
	fx.In

	Logger       *slog.Logger
	Lifecycle    usecase.LifecycleUsecase
	Throttle     usecase.ThrottleUsecase
	Escalation   usecase.EscalationUsecase
	DeliveryRepo repository.DeliveryRepository
	Clock        service.Clock
	Config       *config.Config
}

// NewEventPipeline creates a new event pipeline instance
func NewEventPipeline(params EventPipelineParams) usecase.EventPipelineUsecase {
	return &eventPipeline{
		logger:       params.Logger,
		lifecycle:    params.Lifecycle,
		throttle:     params.Throttle,
		escalation:   params.Escalation,
		deliveryRepo: params.DeliveryRepo,
		clock:        params.Clock,
		events:       make(chan *entity.RegionEvent, params.Config.Engine.EventQueueSize),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Enqueue adds a raw region event without blocking the producer.
func (p *eventPipeline) Enqueue(event *entity.RegionEvent) error {
	select {
	case p.events <- event:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// Start launches the single consumer goroutine. One consumer means events
// for the same geofence are decided in arrival order without any locking
// around throttle state.
func (p *eventPipeline) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		go p.run()
	})
}

// Stop asks the consumer to drain the queue and waits for it to exit.
func (p *eventPipeline) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.quit)
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// QueueDepth reports how many events are waiting.
func (p *eventPipeline) QueueDepth() int {
	return len(p.events)
}

func (p *eventPipeline) run() {
	defer close(p.done)

	for {
		select {
		case event := <-p.events:
			p.process(context.Background(), event)
		case <-p.quit:
			// Drain whatever was already queued before exiting.
			for {
				select {
				case event := <-p.events:
					p.process(context.Background(), event)
				default:
					return
				}
			}
		}
	}
}

// process runs the full decision chain for one raw region event.
func (p *eventPipeline) process(ctx context.Context, event *entity.RegionEvent) {
	if event == nil || !event.Kind.IsValid() {
		return
	}

	definition, err := p.lifecycle.Resolve(ctx, event.GeofenceID)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to resolve region event",
			slog.String("geofence_id", event.GeofenceID.String()),
			slog.String("error", err.Error()))

		return
	}
	if definition == nil {
		// Deleted after the platform queued the event.
		p.logger.DebugContext(ctx, "dropping event for unknown region",
			slog.String("geofence_id", event.GeofenceID.String()))

		return
	}
	if !definition.IsEnabled {
		// Stale registration racing a disable; the next reconcile removes it.
		p.logger.DebugContext(ctx, "dropping event for disabled geofence",
			slog.String("geofence_id", event.GeofenceID.String()))

		return
	}

	// The direction gate is silent: a geofence configured entry-only simply
	// ignores exits. Only cooldown rejections leave an audit row.
	if !definition.WantsEvent(event.Kind) {
		return
	}

	eligible, err := p.throttle.ShouldNotify(ctx, definition, event.Kind)
	if err != nil {
		p.logger.ErrorContext(ctx, "throttle decision failed",
			slog.String("geofence_id", event.GeofenceID.String()),
			slog.String("error", err.Error()))

		return
	}
	if !eligible {
		p.recordThrottled(ctx, definition, event)

		return
	}

	candidate := &usecase.NotificationCandidate{
		GeofenceID: definition.ID,
		Kind:       event.Kind,
		Identifier: "geofence-" + definition.ID.String() + "-" + event.Kind.String(),
		Title:      definition.Name,
		Body:       definition.MessageFor(event.Kind),
		Priority:   definition.Priority,
	}

	outcome, err := p.escalation.Deliver(ctx, candidate)
	if err != nil {
		p.logger.ErrorContext(ctx, "escalation decision failed",
			slog.String("geofence_id", event.GeofenceID.String()),
			slog.String("error", err.Error()))

		return
	}

	p.logger.InfoContext(ctx, "region event decided",
		slog.String("geofence_id", definition.ID.String()),
		slog.String("geofence_name", definition.Name),
		slog.String("kind", event.Kind.String()),
		slog.String("status", string(outcome.Status)),
		slog.String("priority", outcome.EffectivePriority.String()))
}

func (p *eventPipeline) recordThrottled(ctx context.Context, definition *entity.GeofenceDefinition, event *entity.RegionEvent) {
	record := &entity.DeliveryRecord{
		ID:         uuid.New(),
		GeofenceID: definition.ID,
		EventKind:  event.Kind,
		Status:     entity.DeliveryStatusThrottled,
		Priority:   definition.Priority,
		DecidedAt:  p.clock.Now(),
	}

	if err := p.deliveryRepo.CreateDeliveryRecord(ctx, record); err != nil {
		p.logger.ErrorContext(ctx, "failed to write delivery record",
			slog.String("geofence_id", definition.ID.String()),
			slog.String("error", err.Error()))
	}

	p.logger.DebugContext(ctx, "notification throttled",
		slog.String("geofence_id", definition.ID.String()),
		slog.String("kind", event.Kind.String()))
}

package usecase

import (
	"context"

	"perimeter/internal/domain/entity"
)

// EventPipelineUsecase is the single consumer that turns raw region events
// into notification decisions. Events for the same geofence are processed in
// arrival order because one goroutine drains the queue.
type EventPipelineUsecase interface {
	// Enqueue adds a raw region event to the queue. Returns an error when
	// the queue is full rather than blocking the producer.
	Enqueue(event *entity.RegionEvent) error

	// Start launches the consumer goroutine.
	Start(ctx context.Context)

	// Stop drains the consumer and waits for it to exit.
	Stop(ctx context.Context) error

	// QueueDepth reports how many events are waiting.
	QueueDepth() int
}

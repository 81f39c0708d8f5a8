package service

import (
	"context"

	"perimeter/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSendPermissionDenied is returned when the platform rejects a send
// because notification permission was revoked mid-flight.
var ErrSendPermissionDenied = errors.New("notification permission denied")

// OutboundNotification is a fully resolved notification ready for the
// platform sender: escalation has already applied style preferences,
// quiet hours and Do Not Disturb.
type OutboundNotification struct {
	Identifier string          `json:"identifier"` // Stable identifier for collapse/replacement semantics.
	Title      string          `json:"title"`      // The notification title.
	Body       string          `json:"body"`       // The notification body.
	Priority   entity.Priority `json:"priority"`   // The effective delivery priority.
	Sound      bool            `json:"sound"`      // Whether the notification should play sound.
	Haptic     bool            `json:"haptic"`     // Whether the notification should vibrate.
}

// NotificationSender abstracts the platform notification center. Sends may
// fail if permission was revoked; the engine records the failure and never
// retries on its own.
type NotificationSender interface {
	// Send enqueues a notification and returns the platform message ID.
	Send(ctx context.Context, notification *OutboundNotification) (string, error)
}

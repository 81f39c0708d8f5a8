// Package notification delivers resolved notifications through Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"strconv"

	"perimeter/config"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
	topic  string
	logger *slog.Logger
}

// FCMSenderParams holds dependencies for the FCM sender, injected by Fx.
type FCMSenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFCMSender creates a new Firebase Cloud Messaging sender instance.
// Device clients subscribe to the configured topic to receive geofence
// notifications.
func NewFCMSender(params FCMSenderParams) (service.NotificationSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	topic := cfg.Topic
	if topic == "" {
		topic = "geofence-alerts"
	}

	return &fcmSender{
		client: client,
		topic:  topic,
		logger: params.Logger,
	}, nil
}

// Send enqueues a notification and returns the FCM message ID.
func (s *fcmSender) Send(ctx context.Context, notification *service.OutboundNotification) (string, error) {
	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: map[string]string{
			"identifier": notification.Identifier,
			"priority":   notification.Priority.String(),
			"sound":      strconv.FormatBool(notification.Sound),
			"haptic":     strconv.FormatBool(notification.Haptic),
		},
		Android: androidConfig(notification),
		APNS:    apnsConfig(notification),
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsThirdPartyAuthError(err) || messaging.IsUnregistered(err) {
			return "", service.ErrSendPermissionDenied
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	s.logger.DebugContext(ctx, "notification sent",
		slog.String("identifier", notification.Identifier),
		slog.String("message_id", messageID))

	return messageID, nil
}

// androidConfig maps the effective priority onto FCM's two-level Android
// priority. High and critical interrupt; low and medium do not.
func androidConfig(notification *service.OutboundNotification) *messaging.AndroidConfig {
	priority := "normal"
	if notification.Priority == entity.PriorityHigh || notification.Priority == entity.PriorityCritical {
		priority = "high"
	}

	androidNotification := &messaging.AndroidNotification{
		Tag: notification.Identifier,
	}
	if notification.Sound {
		androidNotification.Sound = "default"
	}
	if !notification.Haptic {
		androidNotification.DefaultVibrateTimings = false
	}

	return &messaging.AndroidConfig{
		Priority:     priority,
		Notification: androidNotification,
	}
}

func apnsConfig(notification *service.OutboundNotification) *messaging.APNSConfig {
	headers := map[string]string{"apns-priority": "5"}
	if notification.Priority == entity.PriorityHigh || notification.Priority == entity.PriorityCritical {
		headers["apns-priority"] = "10"
	}

	aps := &messaging.Aps{
		// Collapse repeated alerts from the same geofence and direction.
		ThreadID: notification.Identifier,
	}
	if notification.Sound {
		aps.Sound = "default"
	}
	if notification.Priority == entity.PriorityCritical {
		headers["apns-push-type"] = "alert"
	}

	return &messaging.APNSConfig{
		Headers: headers,
		Payload: &messaging.APNSPayload{Aps: aps},
	}
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "perimeter/internal/delivery/context"
	"perimeter/internal/delivery/http/response"
	"perimeter/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// LocationHandler accepts raw device location samples and forwards them to
// the fence worker for evaluation.
type LocationHandler struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// LocationRequest represents the request body for a location sample
type LocationRequest struct {
	Latitude       float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64    `json:"longitude" validate:"min=-180,max=180"`
	AccuracyMeters float64    `json:"accuracy_meters,omitempty" validate:"min=0"`
	ObservedAt     *time.Time `json:"observed_at,omitempty"`
}

// SubmitLocation handles publishing a location sample for async evaluation
func (h *LocationHandler) SubmitLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	observedAt := time.Now()
	if req.ObservedAt != nil {
		observedAt = *req.ObservedAt
	}

	ctx := c.Request().Context()
	event := &service.EngineEvent{
		RequestID: deliverycontext.GetRequestID(c),
		Type:      service.EngineEventLocationUpdate,
		Location: &service.LocationUpdate{
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			AccuracyMeters: req.AccuracyMeters,
			ObservedAt:     observedAt,
		},
	}

	if err := h.publisher.PublishEngineEvent(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish location update",
			slog.String("error", err.Error()))

		return response.InternalServerError(c, "PUBLISH_FAILED", "Failed to publish location update")
	}

	return response.Success(c, http.StatusAccepted, nil, "Location accepted for evaluation")
}

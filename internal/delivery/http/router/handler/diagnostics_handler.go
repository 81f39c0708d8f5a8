package handler

import (
	"log/slog"
	"net/http"
	"time"

	"perimeter/config"
	"perimeter/internal/delivery/http/response"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/repository"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"
	"perimeter/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiagnosticsHandlerParams holds dependencies for DiagnosticsHandler, injected by Fx.
type DiagnosticsHandlerParams struct {
	fx.In

	LifecycleUC  usecase.LifecycleUsecase
	ThrottleUC   usecase.ThrottleUsecase
	EscalationUC usecase.EscalationUsecase
	GeofenceUC   usecase.GeofenceUsecase
	DeliveryRepo repository.DeliveryRepository
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// DiagnosticsHandler exposes the engine's decision state: why a notification
// did or did not fire. Absence of a notification looks identical to correct
// throttling without this surface.
type DiagnosticsHandler struct {
	lifecycleUC  usecase.LifecycleUsecase
	throttleUC   usecase.ThrottleUsecase
	escalationUC usecase.EscalationUsecase
	geofenceUC   usecase.GeofenceUsecase
	deliveryRepo repository.DeliveryRepository
	clock        service.Clock
	config       *config.Config
	logger       *slog.Logger
}

// NewDiagnosticsHandler is the constructor for DiagnosticsHandler
func NewDiagnosticsHandler(params DiagnosticsHandlerParams) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		lifecycleUC:  params.LifecycleUC,
		throttleUC:   params.ThrottleUC,
		escalationUC: params.EscalationUC,
		geofenceUC:   params.GeofenceUC,
		deliveryRepo: params.DeliveryRepo,
		clock:        params.Clock,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// MonitoringStatus reports the current state of the monitored-region set.
type MonitoringStatus struct {
	Monitored       int         `json:"monitored"`
	Enabled         int         `json:"enabled"`
	Overflow        int         `json:"overflow"`
	Authorized      bool        `json:"authorized"`
	PendingDeferred int         `json:"pending_deferred"`
	LastAdded       []uuid.UUID `json:"last_added,omitempty"`
	LastRemoved     []uuid.UUID `json:"last_removed,omitempty"`
}

// ThrottleStats reports the throttle state for one geofence plus the time
// remaining until the next notification may fire.
type ThrottleStats struct {
	GeofenceID         uuid.UUID  `json:"geofence_id"`
	DailyCount         int        `json:"daily_count"`
	TotalCount         int        `json:"total_count"`
	LastNotificationAt *time.Time `json:"last_notification_at,omitempty"`
	CooldownRemaining  string     `json:"cooldown_remaining,omitempty"`
}

// GetMonitoringStatus handles reporting the monitored-region set. The call
// runs a reconcile pass, so the answer reflects the store, not a stale mirror.
func (h *DiagnosticsHandler) GetMonitoringStatus(c echo.Context) error {
	result, err := h.lifecycleUC.Reconcile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := &MonitoringStatus{
		Monitored:       result.Monitored,
		Enabled:         result.Enabled,
		Overflow:        result.Overflow,
		Authorized:      result.Authorized,
		PendingDeferred: h.escalationUC.PendingDeferred(),
		LastAdded:       result.Added,
		LastRemoved:     result.Removed,
	}

	return response.Success(c, http.StatusOK, status, "Monitoring status retrieved successfully")
}

// GetThrottleStats handles reporting the throttle state for one geofence
func (h *DiagnosticsHandler) GetThrottleStats(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	ctx := c.Request().Context()

	definition, err := h.geofenceUC.GetGeofence(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.throttleUC.GetStats(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats := &ThrottleStats{
		GeofenceID:         state.GeofenceID,
		DailyCount:         state.DailyCount,
		TotalCount:         state.TotalCount,
		LastNotificationAt: state.LastNotificationAt,
	}

	if state.LastNotificationAt != nil && definition.NotificationMode != entity.NotificationModeOnceDaily {
		elapsed := h.clock.Now().Sub(*state.LastNotificationAt)
		if remaining := definition.NotificationMode.Cooldown() - elapsed; remaining > 0 {
			stats.CooldownRemaining = util.FormatDuration(remaining)
		}
	}

	return response.Success(c, http.StatusOK, stats, "Throttle stats retrieved successfully")
}

// ResetThrottleState handles clearing the throttle state for one geofence
func (h *DiagnosticsHandler) ResetThrottleState(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	if err := h.throttleUC.ResetState(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Throttle state reset"}, "Throttle state reset successfully")
}

// GetDeliveryHistory handles retrieving recent delivery records for a geofence
func (h *DiagnosticsHandler) GetDeliveryHistory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	records, err := h.deliveryRepo.FindRecentDeliveries(c.Request().Context(), id, h.config.Engine.DeliveryHistoryLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Delivery history retrieved successfully")
}

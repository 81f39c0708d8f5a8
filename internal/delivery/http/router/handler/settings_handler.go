package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "perimeter/internal/delivery/context"
	"perimeter/internal/delivery/http/response"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/service"
	"perimeter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	EscalationUC usecase.EscalationUsecase
	DNDUC        usecase.DNDUsecase
	LifecycleUC  usecase.LifecycleUsecase
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// SettingsHandler holds dependencies for settings-related handlers
type SettingsHandler struct {
	escalationUC usecase.EscalationUsecase
	dndUC        usecase.DNDUsecase
	lifecycleUC  usecase.LifecycleUsecase
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		escalationUC: params.EscalationUC,
		dndUC:        params.DNDUC,
		lifecycleUC:  params.LifecycleUC,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// PreferencesRequest represents the request body for updating style preferences
type PreferencesRequest struct {
	DefaultPriority   string   `json:"default_priority" validate:"required"`
	Overrides         []string `json:"overrides,omitempty"`
	SoundEnabled      bool     `json:"sound_enabled"`
	HapticEnabled     bool     `json:"haptic_enabled"`
	QuietHoursEnabled bool     `json:"quiet_hours_enabled"`
	QuietHoursStart   int      `json:"quiet_hours_start" validate:"min=0,max=1439"`
	QuietHoursEnd     int      `json:"quiet_hours_end" validate:"min=0,max=1439"`
}

// DNDRequest represents the request body for setting Do Not Disturb
type DNDRequest struct {
	Duration string     `json:"duration" validate:"required"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// AuthorizationRequest represents the request body for the authorization mirror
type AuthorizationRequest struct {
	Authorized *bool `json:"authorized" validate:"required"`
}

// GetPreferences handles retrieving the notification style preferences
func (h *SettingsHandler) GetPreferences(c echo.Context) error {
	prefs, err := h.escalationUC.Preferences(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// UpdatePreferences handles replacing the notification style preferences
func (h *SettingsHandler) UpdatePreferences(c echo.Context) error {
	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	prefs := &entity.NotificationStylePreferences{
		DefaultPriority:   entity.Priority(req.DefaultPriority),
		SoundEnabled:      req.SoundEnabled,
		HapticEnabled:     req.HapticEnabled,
		QuietHoursEnabled: req.QuietHoursEnabled,
		QuietHoursStart:   req.QuietHoursStart,
		QuietHoursEnd:     req.QuietHoursEnd,
	}
	for i, override := range req.Overrides {
		if i >= entity.PriorityCount {
			break
		}
		prefs.Overrides[i] = entity.Priority(override)
	}

	saved, err := h.escalationUC.UpdatePreferences(c.Request().Context(), prefs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishSettingsMutated(c)

	return response.Success(c, http.StatusOK, saved, "Preferences updated successfully")
}

// ResetPreferences handles restoring the factory preferences
func (h *SettingsHandler) ResetPreferences(c echo.Context) error {
	prefs, err := h.escalationUC.ResetPreferences(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishSettingsMutated(c)

	return response.Success(c, http.StatusOK, prefs, "Preferences reset successfully")
}

// GetDoNotDisturb handles retrieving the Do Not Disturb status
func (h *SettingsHandler) GetDoNotDisturb(c echo.Context) error {
	state, err := h.dndUC.Status(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Do Not Disturb status retrieved successfully")
}

// SetDoNotDisturb handles activating or deactivating Do Not Disturb
func (h *SettingsHandler) SetDoNotDisturb(c echo.Context) error {
	var req DNDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid do not disturb input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.dndUC.Set(c.Request().Context(), entity.DNDDuration(req.Duration), req.EndsAt)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishSettingsMutated(c)

	return response.Success(c, http.StatusOK, state, "Do Not Disturb updated successfully")
}

// SetAuthorization handles mirroring the platform authorization state
func (h *SettingsHandler) SetAuthorization(c echo.Context) error {
	var req AuthorizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authorization input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.lifecycleUC.SetAuthorized(c.Request().Context(), *req.Authorized)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishEvent(c, service.EngineEventAuthorizationChanged)

	return response.Success(c, http.StatusOK, result, "Authorization updated successfully")
}

func (h *SettingsHandler) publishSettingsMutated(c echo.Context) {
	h.publishEvent(c, service.EngineEventSettingsMutated)
}

// publishEvent tells the worker to refresh its snapshots. Best effort: the
// worker also converges on its periodic reconcile.
func (h *SettingsHandler) publishEvent(c echo.Context, eventType string) {
	ctx := c.Request().Context()
	event := &service.EngineEvent{
		RequestID: deliverycontext.GetRequestID(c),
		Type:      eventType,
	}
	if err := h.publisher.PublishEngineEvent(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish settings event",
			slog.String("type", eventType),
			slog.String("error", err.Error()))
	}
}

// Package handler contains the HTTP request handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"perimeter/internal/delivery/http/response"
	"perimeter/internal/domain/entity"
	"perimeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler holds dependencies for geofence-related handlers
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// GeofenceRequest represents the request body for creating or updating a geofence
type GeofenceRequest struct {
	Name             string  `json:"name" validate:"required"`
	Latitude         float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude        float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters     float64 `json:"radius_meters" validate:"required,gt=0"`
	NotifyOnEntry    bool    `json:"notify_on_entry"`
	NotifyOnExit     bool    `json:"notify_on_exit"`
	IsEnabled        bool    `json:"is_enabled"`
	NotificationMode string  `json:"notification_mode,omitempty"`
	Priority         string  `json:"priority,omitempty"`
	EntryMessage     string  `json:"entry_message,omitempty"`
	ExitMessage      string  `json:"exit_message,omitempty"`
}

// SetEnabledRequest represents the request body for toggling a geofence
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// CreateGeofence handles creating a new geofence definition
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	input, bindErr := h.bindInput(c)
	if input == nil {
		return bindErr
	}

	geofence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, geofence, "Geofence created successfully")
}

// UpdateGeofence handles updating an existing geofence definition
func (h *GeofenceHandler) UpdateGeofence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	input, bindErr := h.bindInput(c)
	if input == nil {
		return bindErr
	}

	geofence, err := h.geofenceUC.UpdateGeofence(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence updated successfully")
}

// DeleteGeofence handles removing a geofence definition
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	if err := h.geofenceUC.DeleteGeofence(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Geofence deleted"}, "Geofence deleted successfully")
}

// SetGeofenceEnabled handles toggling a geofence on or off
func (h *GeofenceHandler) SetGeofenceEnabled(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	var req SetEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enabled input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	geofence, err := h.geofenceUC.SetGeofenceEnabled(c.Request().Context(), id, *req.Enabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence updated successfully")
}

// GetGeofence handles retrieving one geofence definition
func (h *GeofenceHandler) GetGeofence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	geofence, err := h.geofenceUC.GetGeofence(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence retrieved successfully")
}

// ListGeofences handles retrieving all geofence definitions
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	geofences, err := h.geofenceUC.ListGeofences(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofences, "Geofences retrieved successfully")
}

func (h *GeofenceHandler) bindInput(c echo.Context) (*usecase.GeofenceInput, error) {
	var req GeofenceRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return req.toInput(), nil
}

func (r *GeofenceRequest) toInput() *usecase.GeofenceInput {
	return &usecase.GeofenceInput{
		Name:             r.Name,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		RadiusMeters:     r.RadiusMeters,
		NotifyOnEntry:    r.NotifyOnEntry,
		NotifyOnExit:     r.NotifyOnExit,
		IsEnabled:        r.IsEnabled,
		NotificationMode: entity.NotificationMode(r.NotificationMode),
		Priority:         entity.Priority(r.Priority),
		EntryMessage:     r.EntryMessage,
		ExitMessage:      r.ExitMessage,
	}
}

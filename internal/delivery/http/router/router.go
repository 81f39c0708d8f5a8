// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"perimeter/internal/delivery/http/middleware"
	"perimeter/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeofenceHandler    *handler.GeofenceHandler
	SettingsHandler    *handler.SettingsHandler
	LocationHandler    *handler.LocationHandler
	DiagnosticsHandler *handler.DiagnosticsHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	geofenceHandler    *handler.GeofenceHandler
	settingsHandler    *handler.SettingsHandler
	locationHandler    *handler.LocationHandler
	diagnosticsHandler *handler.DiagnosticsHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geofenceHandler:    params.GeofenceHandler,
		settingsHandler:    params.SettingsHandler,
		locationHandler:    params.LocationHandler,
		diagnosticsHandler: params.DiagnosticsHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Geofence store
	geofenceGroup := e.Group("/geofences")
	geofenceGroup.Use(r.authMiddleware.Authenticate)
	{
		geofenceGroup.POST("", r.geofenceHandler.CreateGeofence)
		geofenceGroup.GET("", r.geofenceHandler.ListGeofences)
		geofenceGroup.GET("/:id", r.geofenceHandler.GetGeofence)
		geofenceGroup.PUT("/:id", r.geofenceHandler.UpdateGeofence)
		geofenceGroup.DELETE("/:id", r.geofenceHandler.DeleteGeofence)
		geofenceGroup.PATCH("/:id/enabled", r.geofenceHandler.SetGeofenceEnabled)
	}

	// Notification and monitoring settings
	settingsGroup := e.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("/preferences", r.settingsHandler.GetPreferences)
		settingsGroup.PUT("/preferences", r.settingsHandler.UpdatePreferences)
		settingsGroup.POST("/preferences/reset", r.settingsHandler.ResetPreferences)
		settingsGroup.GET("/dnd", r.settingsHandler.GetDoNotDisturb)
		settingsGroup.PUT("/dnd", r.settingsHandler.SetDoNotDisturb)
		settingsGroup.PUT("/authorization", r.settingsHandler.SetAuthorization)
	}

	// Device location samples
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("", r.locationHandler.SubmitLocation)
	}

	// Decision diagnostics
	diagnosticsGroup := e.Group("/diagnostics")
	diagnosticsGroup.Use(r.authMiddleware.Authenticate)
	{
		diagnosticsGroup.GET("/monitoring", r.diagnosticsHandler.GetMonitoringStatus)
		diagnosticsGroup.GET("/geofences/:id/throttle", r.diagnosticsHandler.GetThrottleStats)
		diagnosticsGroup.POST("/geofences/:id/throttle/reset", r.diagnosticsHandler.ResetThrottleState)
		diagnosticsGroup.GET("/geofences/:id/deliveries", r.diagnosticsHandler.GetDeliveryHistory)
	}
}

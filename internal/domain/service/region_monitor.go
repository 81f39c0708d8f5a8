// Package service defines the interfaces for external collaborators consumed
// by the engine: the platform region monitor, the notification sender, the
// event publisher, and the clock.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrMonitoringDenied is returned when region monitoring is attempted
	// without always-authorization. Non-fatal: the lifecycle manager retries
	// on the next reconcile pass.
	ErrMonitoringDenied = errors.New("region monitoring not authorized")

	// ErrRegionLimitExceeded is returned when a registration would exceed the
	// platform's concurrent region ceiling.
	ErrRegionLimitExceeded = errors.New("region monitoring limit exceeded")
)

// RegionMonitor abstracts the platform's region-monitoring service. It
// enforces the authorization requirement and the region ceiling on its own;
// the lifecycle manager's ceiling check is a defensive mirror.
type RegionMonitor interface {
	// StartMonitoring registers a circular region for event delivery.
	StartMonitoring(ctx context.Context, id uuid.UUID, latitude, longitude, radiusMeters float64) error

	// StopMonitoring deregisters a region. Unknown IDs are a no-op.
	StopMonitoring(ctx context.Context, id uuid.UUID) error

	// MonitoredIDs returns the identifiers currently registered.
	MonitoredIDs(ctx context.Context) ([]uuid.UUID, error)

	// SetAuthorized records the platform authorization state. Revoking
	// authorization drops every active registration.
	SetAuthorized(authorized bool)
}

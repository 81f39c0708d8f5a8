// Package regionmonitor evaluates device locations against registered
// circular regions and raises entry/exit events, standing in for a platform
// region-monitoring service.
package regionmonitor

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"perimeter/config"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

// EventSink receives raised region events. Bound after construction because
// the event pipeline and the monitor are built independently.
type EventSink func(event *entity.RegionEvent) error

type region struct {
	id     uuid.UUID
	center orb.Point
	radius float64
	inside bool
	known  bool // containment observed at least once
}

// GeodeticMonitor is an in-process region monitor: registrations are held in
// memory and containment is decided by haversine distance on each location
// sample.
type GeodeticMonitor struct {
	logger  *slog.Logger
	ceiling int
	clock   service.Clock

	mu         sync.Mutex
	authorized bool
	regions    map[uuid.UUID]*region
	sink       EventSink
}

// MonitorParams holds dependencies for the GeodeticMonitor, injected by Fx.
type MonitorParams struct {
	fx.In

	Logger *slog.Logger
	Clock  service.Clock
	Config *config.Config
}

// New creates a new GeodeticMonitor instance
func New(params MonitorParams) *GeodeticMonitor {
	return &GeodeticMonitor{
		logger:  params.Logger,
		ceiling: params.Config.Engine.RegionCeiling,
		clock:   params.Clock,
		regions: make(map[uuid.UUID]*region),
	}
}

// AsRegionMonitor exposes the monitor through its domain interface.
func AsRegionMonitor(m *GeodeticMonitor) service.RegionMonitor {
	return m
}

// Bind attaches the event sink. Events raised before Bind are dropped.
func (m *GeodeticMonitor) Bind(sink EventSink) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sink = sink
}

// StartMonitoring registers a circular region for event delivery.
func (m *GeodeticMonitor) StartMonitoring(ctx context.Context, id uuid.UUID, latitude, longitude, radiusMeters float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.authorized {
		return service.ErrMonitoringDenied
	}
	if _, ok := m.regions[id]; !ok && len(m.regions) >= m.ceiling {
		return service.ErrRegionLimitExceeded
	}

	// orb points are longitude-first.
	m.regions[id] = &region{
		id:     id,
		center: orb.Point{longitude, latitude},
		radius: radiusMeters,
	}

	m.logger.DebugContext(ctx, "region registered",
		slog.String("region_id", id.String()),
		slog.Float64("radius_meters", radiusMeters),
		slog.Int("monitored", len(m.regions)))

	return nil
}

// StopMonitoring deregisters a region. Unknown IDs are a no-op.
func (m *GeodeticMonitor) StopMonitoring(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.regions, id)

	return nil
}

// MonitoredIDs returns the identifiers currently registered.
func (m *GeodeticMonitor) MonitoredIDs(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(m.regions))
	for id := range m.regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids, nil
}

// SetAuthorized records the platform authorization state. Revoking
// authorization drops every active registration.
func (m *GeodeticMonitor) SetAuthorized(authorized bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.authorized && !authorized {
		m.regions = make(map[uuid.UUID]*region)
	}
	m.authorized = authorized
}

// EvaluateLocation checks one location sample against every registered
// region and raises entry/exit events on containment transitions. The first
// sample establishes the baseline: a device discovered inside a region
// raises an entry, one discovered outside raises nothing.
func (m *GeodeticMonitor) EvaluateLocation(ctx context.Context, latitude, longitude float64) {
	point := orb.Point{longitude, latitude}

	m.mu.Lock()

	if !m.authorized {
		m.mu.Unlock()

		return
	}

	// Stable iteration order keeps multi-region crossings deterministic.
	ordered := make([]*region, 0, len(m.regions))
	for _, r := range m.regions {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].id.String() < ordered[j].id.String()
	})

	var events []*entity.RegionEvent
	now := m.clock.Now()

	for _, r := range ordered {
		inside := geo.Distance(point, r.center) <= r.radius

		switch {
		case !r.known:
			r.known = true
			r.inside = inside
			if inside {
				events = append(events, &entity.RegionEvent{
					GeofenceID: r.id,
					Kind:       entity.EventKindEntry,
					OccurredAt: now,
				})
			}
		case inside != r.inside:
			r.inside = inside
			kind := entity.EventKindExit
			if inside {
				kind = entity.EventKindEntry
			}
			events = append(events, &entity.RegionEvent{
				GeofenceID: r.id,
				Kind:       kind,
				OccurredAt: now,
			})
		}
	}

	sink := m.sink
	m.mu.Unlock()

	if sink == nil {
		if len(events) > 0 {
			m.logger.WarnContext(ctx, "dropping region events, no sink bound",
				slog.Int("events", len(events)))
		}

		return
	}

	for _, event := range events {
		if err := sink(event); err != nil {
			m.logger.ErrorContext(ctx, "failed to deliver region event",
				slog.String("region_id", event.GeofenceID.String()),
				slog.String("kind", event.Kind.String()),
				slog.String("error", err.Error()))
		}
	}
}

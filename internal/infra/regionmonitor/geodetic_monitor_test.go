package regionmonitor

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perimeter/config"
	"perimeter/internal/domain/entity"
	"perimeter/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Taipei 101 and a point roughly 170 meters away from it.
const (
	centerLat  = 25.033964
	centerLon  = 121.564468
	nearbyLat  = 25.035
	nearbyLon  = 121.5655
	farawayLat = 25.05
	farawayLon = 121.60
)

func createTestMonitor(t *testing.T, ceiling int) (*GeodeticMonitor, *[]*entity.RegionEvent) {
	monitor := New(MonitorParams{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  fixedClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)},
		Config: &config.Config{Engine: &config.EngineConfig{RegionCeiling: ceiling}},
	})

	events := &[]*entity.RegionEvent{}
	monitor.Bind(func(event *entity.RegionEvent) error {
		*events = append(*events, event)

		return nil
	})

	return monitor, events
}

func TestGeodeticMonitor_StartMonitoring_RequiresAuthorization(t *testing.T) {
	monitor, _ := createTestMonitor(t, 20)

	err := monitor.StartMonitoring(context.Background(), uuid.New(), centerLat, centerLon, 100)
	assert.ErrorIs(t, err, service.ErrMonitoringDenied)
}

func TestGeodeticMonitor_StartMonitoring_EnforcesCeiling(t *testing.T) {
	monitor, _ := createTestMonitor(t, 2)
	monitor.SetAuthorized(true)

	ctx := context.Background()
	require.NoError(t, monitor.StartMonitoring(ctx, uuid.New(), centerLat, centerLon, 100))
	require.NoError(t, monitor.StartMonitoring(ctx, uuid.New(), nearbyLat, nearbyLon, 100))

	err := monitor.StartMonitoring(ctx, uuid.New(), farawayLat, farawayLon, 100)
	assert.ErrorIs(t, err, service.ErrRegionLimitExceeded)

	ids, err := monitor.MonitoredIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestGeodeticMonitor_StartMonitoring_ReplacesExistingRegion(t *testing.T) {
	monitor, _ := createTestMonitor(t, 1)
	monitor.SetAuthorized(true)

	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, monitor.StartMonitoring(ctx, id, centerLat, centerLon, 100))

	// Re-registering the same ID does not count against the ceiling.
	require.NoError(t, monitor.StartMonitoring(ctx, id, centerLat, centerLon, 250))
}

func TestGeodeticMonitor_EvaluateLocation_FirstSampleBaseline(t *testing.T) {
	monitor, events := createTestMonitor(t, 20)
	monitor.SetAuthorized(true)

	ctx := context.Background()
	insideRegion := uuid.New()
	outsideRegion := uuid.New()
	require.NoError(t, monitor.StartMonitoring(ctx, insideRegion, centerLat, centerLon, 500))
	require.NoError(t, monitor.StartMonitoring(ctx, outsideRegion, farawayLat, farawayLon, 100))

	// The device is discovered inside the first region and outside the
	// second: one entry, no exit.
	monitor.EvaluateLocation(ctx, centerLat, centerLon)

	require.Len(t, *events, 1)
	assert.Equal(t, insideRegion, (*events)[0].GeofenceID)
	assert.Equal(t, entity.EventKindEntry, (*events)[0].Kind)
}

func TestGeodeticMonitor_EvaluateLocation_Transitions(t *testing.T) {
	monitor, events := createTestMonitor(t, 20)
	monitor.SetAuthorized(true)

	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, monitor.StartMonitoring(ctx, id, centerLat, centerLon, 300))

	// Baseline outside.
	monitor.EvaluateLocation(ctx, farawayLat, farawayLon)
	assert.Empty(t, *events)

	// Crossing in raises an entry.
	monitor.EvaluateLocation(ctx, centerLat, centerLon)
	require.Len(t, *events, 1)
	assert.Equal(t, entity.EventKindEntry, (*events)[0].Kind)

	// Staying inside raises nothing.
	monitor.EvaluateLocation(ctx, nearbyLat, nearbyLon)
	assert.Len(t, *events, 1)

	// Crossing out raises an exit.
	monitor.EvaluateLocation(ctx, farawayLat, farawayLon)
	require.Len(t, *events, 2)
	assert.Equal(t, entity.EventKindExit, (*events)[1].Kind)
}

func TestGeodeticMonitor_SetAuthorized_RevokeDropsRegions(t *testing.T) {
	monitor, events := createTestMonitor(t, 20)
	monitor.SetAuthorized(true)

	ctx := context.Background()
	require.NoError(t, monitor.StartMonitoring(ctx, uuid.New(), centerLat, centerLon, 300))

	monitor.SetAuthorized(false)

	ids, err := monitor.MonitoredIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Samples are ignored while unauthorized.
	monitor.EvaluateLocation(ctx, centerLat, centerLon)
	assert.Empty(t, *events)
}

func TestGeodeticMonitor_StopMonitoring_UnknownIDIsNoOp(t *testing.T) {
	monitor, _ := createTestMonitor(t, 20)
	monitor.SetAuthorized(true)

	err := monitor.StopMonitoring(context.Background(), uuid.New())
	assert.NoError(t, err)
}

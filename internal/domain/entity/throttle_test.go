package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameLocalDay(t *testing.T) {
	loc := time.UTC

	a := time.Date(2026, 3, 14, 23, 50, 0, 0, loc)
	b := time.Date(2026, 3, 15, 0, 10, 0, 0, loc)
	c := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	assert.False(t, SameLocalDay(a, b, loc), "twenty minutes apart but across midnight")
	assert.True(t, SameLocalDay(a, c, loc), "almost a full day apart but the same date")
}

func TestThrottleState_EffectiveDailyCount(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	// No sends recorded yet.
	empty := &ThrottleState{}
	assert.Equal(t, 0, empty.EffectiveDailyCount(now))

	// Last send earlier the same day: the stored counter stands.
	today := now.Add(-2 * time.Hour)
	sameDay := &ThrottleState{DailyCount: 3, LastNotificationAt: &today}
	assert.Equal(t, 3, sameDay.EffectiveDailyCount(now))

	// Last send yesterday: the counter reads as zero without being written.
	yesterday := now.Add(-12 * time.Hour)
	stale := &ThrottleState{DailyCount: 3, LastNotificationAt: &yesterday}
	assert.Equal(t, 0, stale.EffectiveDailyCount(now))
	assert.Equal(t, 3, stale.DailyCount, "the stored value is untouched")
}

func TestGeofenceDefinition_MessageFor(t *testing.T) {
	def := &GeofenceDefinition{Name: "Home"}

	assert.Equal(t, "You have arrived at Home", def.MessageFor(EventKindEntry))
	assert.Equal(t, "You have left Home", def.MessageFor(EventKindExit))

	def.EntryMessage = "Welcome back!"
	assert.Equal(t, "Welcome back!", def.MessageFor(EventKindEntry))
}

func TestGeofenceDefinition_SameRegionAs(t *testing.T) {
	a := &GeofenceDefinition{Latitude: 25.03, Longitude: 121.56, RadiusMeters: 100}
	b := &GeofenceDefinition{Latitude: 25.03, Longitude: 121.56, RadiusMeters: 100, Name: "renamed"}
	c := &GeofenceDefinition{Latitude: 25.03, Longitude: 121.56, RadiusMeters: 250}

	assert.True(t, a.SameRegionAs(b), "a rename does not touch the registered region")
	assert.False(t, a.SameRegionAs(c), "a resize replaces the registration")
	assert.False(t, a.SameRegionAs(nil))
}

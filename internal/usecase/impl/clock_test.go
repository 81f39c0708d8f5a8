package impl

import (
	"io"
	"log/slog"
	"time"
)

// fakeClock is a manually advanced clock for deterministic cooldown,
// quiet-hours and expiry tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

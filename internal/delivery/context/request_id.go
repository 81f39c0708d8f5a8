// Package context carries the request ID and the request-scoped logger
// across the HTTP layer and into the engine, so a location sample can be
// traced from the ingest endpoint through Pub/Sub to the delivery decision.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey types the context keys so they cannot collide with keys from
// other packages.
type ContextKey string

const (
	// KeyRequestID carries the request ID.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger carries the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the header the ID travels in between the API
	// server, Pub/Sub attributes and the fence worker.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on the echo context, minting a
// fresh one when the middleware has not run.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID from a standard context,
// or an empty string when none was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID attaches the request ID to a standard context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil when none was attached.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// given logger outside a request (startup, background ticks).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger attaches a logger to a standard context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

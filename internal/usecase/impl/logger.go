package impl

import (
	"context"
	"log/slog"

	deliverycontext "schoolhub/internal/delivery/context"
)

// requestLogger returns a request-scoped logger if available, otherwise falls back to the service's logger.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

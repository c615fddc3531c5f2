package service

import (
	"context"
	"log/slog"

	"github.com/rdevrajsinh/totalenc/internal/logger"
	"github.com/rdevrajsinh/totalenc/internal/middleware"
)

// componentLogger tags lines with the component and, for calls made while
// serving a request, its request id.
func componentLogger(ctx context.Context, component string) *slog.Logger {
	l := logger.WithComponent(component)
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		l = l.With(slog.String("request_id", id))
	}
	return l
}

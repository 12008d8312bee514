package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/roadnet-api/internal/api/shared"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID and a logger
// carrying it to the request context, and echoes the ID in the X-Trace-ID
// response header.
// It should run before any handler that logs or writes errors.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

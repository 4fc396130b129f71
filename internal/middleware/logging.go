package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"kundali-api/internal/platform/logger"
)

// RequestLogger loguea cada request con método, path, status y latencia.
// Usa el request ID de chi si está presente.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				fields["request_id"] = reqID
			}

			if rec.status >= 500 {
				log.Error("http request", fields)
			} else {
				log.Info("http request", fields)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/forumapi-dev/forumapi/internal/logger"
	"github.com/forumapi-dev/forumapi/internal/metrics"
)

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []any{
			"method", r.Method,
			"route", metrics.RoutePattern(r),
			"status", status,
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Log.Error("request", attrs...)
		case status >= http.StatusBadRequest:
			logger.Log.Info("request", attrs...)
		default:
			logger.Log.Debug("request", attrs...)
		}
	})
}

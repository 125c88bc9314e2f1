package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"zapshift/internal/handlers/rest/response"
	"zapshift/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware отклоняет новые запросы с 503 после отмены ongoingCtx при остановке сервиса.
func Middleware(log errorLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					response.Error(w, log, http.StatusServiceUnavailable, "service is shutting down")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}

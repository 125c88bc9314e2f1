package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/pkg/logger"
)

// Middleware ограничивает общий поток запросов к сервису. qps попадает только в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, log, http.StatusTooManyRequests, dto.Error{
				Error:   "too many requests",
				Message: pointer.To("Rate limit exceeded. Try again later."),
			})
		})
	}
}

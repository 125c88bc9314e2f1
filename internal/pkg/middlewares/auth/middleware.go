package auth

import (
	"net/http"
	"strings"

	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/pkg/authctx"
	"zapshift/pkg/logger"
)

const bearerPrefix = "bearer "

// Middleware пропускает запрос дальше только с валидным Authorization: Bearer <token>.
// Проверенная личность кладется в контекст запроса.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				response.Error(w, log, http.StatusUnauthorized, "unauthorized access")
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("identity verification failed")
				response.Error(w, log, http.StatusUnauthorized, "unauthorized access")
				return
			}

			next.ServeHTTP(w, r.WithContext(authctx.WithIdentity(r.Context(), identity)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

package response

import (
	"errors"
	"net/http"

	"zapshift/internal/service/access"
	"zapshift/pkg/logger"
)

// AccessError отвечает 401/403 на отказ политики доступа, иначе 500.
func AccessError(w http.ResponseWriter, log errorLogger, err error) {
	switch {
	case errors.Is(err, access.ErrUnauthenticated):
		Error(w, log, http.StatusUnauthorized, "unauthorized access")
	case errors.Is(err, access.ErrForbidden):
		Error(w, log, http.StatusForbidden, "forbidden access")
	default:
		log.Error("authorize request", logger.NewField("error", err))
		Error(w, log, http.StatusInternalServerError, "internal error")
	}
}

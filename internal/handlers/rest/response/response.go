package response

import (
	"encoding/json"
	"net/http"

	"zapshift/internal/generated/dto"
	"zapshift/pkg/logger"
)

const bodyLimit = 1 << 20

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, msg string) {
	JSON(w, log, status, dto.Error{Error: msg})
}

// DecodeJSON читает тело запроса не длиннее bodyLimit.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	return json.NewDecoder(r.Body).Decode(dst)
}

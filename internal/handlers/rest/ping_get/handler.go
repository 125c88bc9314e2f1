package ping_get

import (
	"net/http"

	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.Pong{Message: "pong"})
}

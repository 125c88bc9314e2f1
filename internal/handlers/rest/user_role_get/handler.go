package user_role_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/pkg/logger"
)

// Handler отдает роль пользователя по email. Неизвестный email получает роль user.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["user"]

	role, err := h.service.GetUserRole(r.Context(), email)
	if err != nil {
		h.log.Error("get user role", logger.NewField("error", err))
		response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.UserRoleResponse{Role: dto.UserRole(role)})
}

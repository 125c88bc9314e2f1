package users_get

import (
	"net/http"

	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/pkg/authctx"
	"zapshift/internal/service/access"
	"zapshift/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	policy  Policy
	service Service
}

func New(log handlerLogger, policy Policy, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		policy:  policy,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, err := h.policy.Authorize(r.Context(), access.Request{
		Action:   access.ActionListUsers,
		Identity: authctx.Identity(r.Context()),
	})
	if err != nil {
		response.AccessError(w, h.log, err)
		return
	}

	users, err := h.service.SearchUsers(r.Context(), r.URL.Query().Get("searchText"))
	if err != nil {
		h.log.Error("search users", logger.NewField("error", err))
		response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ToUserDTOs(users))
}

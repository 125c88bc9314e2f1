package user_role_patch

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/pkg/authctx"
	"zapshift/internal/service/access"
	"zapshift/internal/service/user"
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
		Action:   access.ActionChangeUserRole,
		Identity: authctx.Identity(r.Context()),
	})
	if err != nil {
		response.AccessError(w, h.log, err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["user"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, user.ErrInvalidUserID.Error())
		return
	}

	var roleUpdateDTO dto.UserRoleUpdate
	err = response.DecodeJSON(w, r, &roleUpdateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	role := entities.UserRoleType(roleUpdateDTO.Role)
	updated, err := h.service.ChangeUserRole(r.Context(), entities.UserModify{
		ID:   &id,
		Role: &role,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrMissingRequiredFields):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(w, h.log, http.StatusNotFound, user.ErrUserNotFound.Error())
		default:
			h.log.Error("change user role", logger.NewField("error", err), logger.NewField("user_id", id.String()))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("user role changed",
		logger.NewField("user_id", id.String()),
		logger.NewField("role", updated.Role.String()),
	)

	response.JSON(w, h.log, http.StatusOK, converters.ToUserDTO(*updated))
}

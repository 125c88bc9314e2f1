package rider_patch

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
	"zapshift/internal/service/rider"
	"zapshift/pkg/logger"
)

// Handler одобряет или отклоняет заявку райдера. Одобрение повышает
// связанного пользователя до роли rider.
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
		Action:   access.ActionChangeRiderStatus,
		Identity: authctx.Identity(r.Context()),
	})
	if err != nil {
		response.AccessError(w, h.log, err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, rider.ErrInvalidRiderID.Error())
		return
	}

	var statusUpdateDTO dto.RiderStatusUpdate
	err = response.DecodeJSON(w, r, &statusUpdateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	updated, err := h.service.ChangeRiderStatus(r.Context(), id, entities.RiderStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidStatus):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, rider.ErrRiderNotFound):
			response.Error(w, h.log, http.StatusNotFound, rider.ErrRiderNotFound.Error())
		default:
			h.log.Error("change rider status", logger.NewField("error", err), logger.NewField("rider_id", id.String()))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("rider status changed",
		logger.NewField("rider_id", id.String()),
		logger.NewField("status", updated.Status.String()),
	)

	response.JSON(w, h.log, http.StatusOK, converters.ToRiderDTO(*updated))
}

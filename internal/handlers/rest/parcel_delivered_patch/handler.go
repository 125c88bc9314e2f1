package parcel_delivered_patch

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/pkg/authctx"
	"zapshift/internal/service/access"
	"zapshift/internal/service/parcel"
	"zapshift/pkg/logger"
)

// Handler завершает доставку. Администратор может закрыть любую посылку,
// райдер только назначенную на него.
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
	decision, err := h.policy.Authorize(r.Context(), access.Request{
		Action:   access.ActionCompleteDelivery,
		Identity: authctx.Identity(r.Context()),
	})
	if err != nil {
		response.AccessError(w, h.log, err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		return
	}

	delivered, err := h.service.MarkDelivered(r.Context(), id, decision.ScopeEmail)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, parcel.ErrParcelNotFound.Error())
		case errors.Is(err, parcel.ErrNotAssignedRider):
			response.Error(w, h.log, http.StatusForbidden, parcel.ErrNotAssignedRider.Error())
		case errors.Is(err, parcel.ErrParcelNotInRoute):
			response.Error(w, h.log, http.StatusConflict, parcel.ErrParcelNotInRoute.Error())
		default:
			h.log.Error("mark parcel delivered", logger.NewField("error", err), logger.NewField("parcel_id", id))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("parcel delivered", logger.NewField("parcel_id", id))
	response.JSON(w, h.log, http.StatusOK, converters.ToParcelDTO(*delivered))
}

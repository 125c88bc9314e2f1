package riders_get

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"zapshift/internal/entities"
	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/service/rider"
	"zapshift/pkg/logger"
)

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
	query := r.URL.Query()

	var filter entities.RiderFilter
	if status := query.Get("status"); status != "" {
		filter.Status = pointer.To(entities.RiderStatusType(status))
	}
	if district := query.Get("riderDistrict"); district != "" {
		filter.RiderDistrict = pointer.To(district)
	}
	if workStatus := query.Get("workStatus"); workStatus != "" {
		filter.WorkStatus = pointer.To(entities.RiderWorkStatusType(workStatus))
	}

	riders, err := h.service.GetRiders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidStatus),
			errors.Is(err, rider.ErrInvalidWorkStatus):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("get riders", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ToRiderDTOs(riders))
}

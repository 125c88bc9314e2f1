package parcels_get

import (
	"errors"
	"net/http"

	"zapshift/internal/entities"
	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/service/parcel"
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

	var filter entities.ParcelFilter
	if email := query.Get("email"); email != "" {
		filter.SenderEmail = &email
	}
	if status := query.Get("deliveryStatus"); status != "" {
		deliveryStatus := entities.DeliveryStatusType(status)
		filter.DeliveryStatus = &deliveryStatus
	}

	parcels, err := h.service.GetParcels(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidDeliveryStatus):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("get parcels", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ToParcelDTOs(parcels))
}

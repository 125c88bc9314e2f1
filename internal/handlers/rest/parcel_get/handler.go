package parcel_get

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		return
	}

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, parcel.ErrParcelNotFound.Error())
		case errors.Is(err, parcel.ErrInvalidParcelID):
			response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		default:
			h.log.Error("get parcel", logger.NewField("error", err), logger.NewField("parcel_id", id))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ToParcelDTO(*parcelEntity))
}

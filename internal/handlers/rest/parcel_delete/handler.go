package parcel_delete

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		return
	}

	err = h.service.DeleteParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, parcel.ErrParcelNotFound.Error())
		case errors.Is(err, parcel.ErrInvalidParcelID):
			response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		default:
			h.log.Error("delete parcel", logger.NewField("error", err), logger.NewField("parcel_id", id))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("parcel deleted", logger.NewField("parcel_id", id))
	w.WriteHeader(http.StatusNoContent)
}

package parcel_post

import (
	"errors"
	"net/http"

	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
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
	var parcelCreateDTO dto.ParcelCreate
	err := response.DecodeJSON(w, r, &parcelCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	parcelModifyEntity := entities.ParcelModify{
		SenderEmail: &parcelCreateDTO.SenderEmail,
		ParcelName:  &parcelCreateDTO.ParcelName,
		Cost:        &parcelCreateDTO.Cost,
	}

	created, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidEmail),
			errors.Is(err, parcel.ErrInvalidParcelName),
			errors.Is(err, parcel.ErrInvalidCost):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("create parcel", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	insertedID := created.ID.String()
	response.JSON(w, h.log, http.StatusCreated, dto.InsertResult{InsertedId: &insertedID})
}

package rider_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/service/rider"
	"zapshift/pkg/logger"
)

const alreadyAppliedMessage = "Rider already applied"

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
	var riderCreateDTO dto.RiderCreate
	err := response.DecodeJSON(w, r, &riderCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	applied, err := h.service.Apply(r.Context(), entities.RiderModify{
		Name:          riderCreateDTO.Name,
		Email:         &riderCreateDTO.Email,
		Phone:         riderCreateDTO.Phone,
		RiderDistrict: &riderCreateDTO.RiderDistrict,
	})
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrRiderAlreadyApplied):
			response.JSON(w, h.log, http.StatusOK, dto.InsertResult{Message: pointer.To(alreadyAppliedMessage)})
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("apply rider", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("rider applied",
		logger.NewField("rider_id", applied.ID.String()),
		logger.NewField("district", applied.RiderDistrict),
	)

	response.JSON(w, h.log, http.StatusCreated, dto.InsertResult{InsertedId: pointer.To(applied.ID.String())})
}

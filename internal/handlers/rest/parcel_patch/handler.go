package parcel_patch

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/pkg/authctx"
	"zapshift/internal/service/access"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/rider"
	"zapshift/pkg/logger"
)

// Handler назначает райдера на посылку. Доступно только администратору.
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
		Action:   access.ActionAssignRider,
		Identity: authctx.Identity(r.Context()),
	})
	if err != nil {
		response.AccessError(w, h.log, err)
		return
	}

	parcelID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidParcelID.Error())
		return
	}

	var riderAssignDTO dto.RiderAssign
	err = response.DecodeJSON(w, r, &riderAssignDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	riderID, err := uuid.Parse(riderAssignDTO.RiderId)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, parcel.ErrInvalidRiderID.Error())
		return
	}

	assignment := entities.RiderAssignment{
		ParcelID: parcelID,
		Rider: entities.ParcelRider{
			ID:    riderID,
			Name:  pointer.Get(riderAssignDTO.RiderName),
			Email: pointer.Get(riderAssignDTO.RiderEmail),
			Phone: pointer.Get(riderAssignDTO.RiderPhone),
		},
	}

	assigned, err := h.service.AssignRider(r.Context(), assignment)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidRiderID):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, parcel.ErrParcelNotFound.Error())
		case errors.Is(err, rider.ErrRiderNotFound):
			response.Error(w, h.log, http.StatusNotFound, rider.ErrRiderNotFound.Error())
		case errors.Is(err, parcel.ErrParcelNotPaid),
			errors.Is(err, parcel.ErrParcelDelivered),
			errors.Is(err, parcel.ErrRiderNotApproved),
			errors.Is(err, parcel.ErrRiderUnavailable):
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("assign rider",
				logger.NewField("error", err),
				logger.NewField("parcel_id", parcelID),
				logger.NewField("rider_id", riderID),
			)
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("rider assigned",
		logger.NewField("parcel_id", parcelID),
		logger.NewField("rider_id", riderID),
	)
	response.JSON(w, h.log, http.StatusOK, converters.ToParcelDTO(*assigned))
}

package checkout_session_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/payment"
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
	var sessionCreateDTO dto.CheckoutSessionCreate
	err := response.DecodeJSON(w, r, &sessionCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	parcelID, err := uuid.Parse(sessionCreateDTO.ParcelId)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, payment.ErrInvalidParcelID.Error())
		return
	}

	request := entities.CheckoutRequest{
		ParcelID:    parcelID,
		ParcelName:  pointer.Get(sessionCreateDTO.ParcelName),
		SenderEmail: pointer.Get(sessionCreateDTO.SenderEmail),
		Cost:        sessionCreateDTO.Cost,
	}

	url, err := h.service.CreateCheckoutSession(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidParcelID),
			errors.Is(err, payment.ErrInvalidCost),
			errors.Is(err, payment.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, parcel.ErrParcelNotFound.Error())
		case errors.Is(err, payment.ErrParcelAlreadyPaid):
			response.Error(w, h.log, http.StatusConflict, payment.ErrParcelAlreadyPaid.Error())
		case errors.Is(err, payment.ErrGatewayUnavailable):
			h.log.Error("create checkout session", logger.NewField("error", err), logger.NewField("parcel_id", parcelID))
			response.Error(w, h.log, http.StatusBadGateway, payment.ErrGatewayUnavailable.Error())
		default:
			h.log.Error("create checkout session", logger.NewField("error", err), logger.NewField("parcel_id", parcelID))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CheckoutSession{Url: url})
}

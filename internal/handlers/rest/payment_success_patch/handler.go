package payment_success_patch

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/payment"
	"zapshift/pkg/logger"
)

const alreadyProcessedMessage = "Payment already processed"

// Handler подтверждает оплату после редиректа со страницы шлюза.
// Повторный вызов для той же сессии безопасен.
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
	sessionID := r.URL.Query().Get("session_id")

	confirmation, err := h.service.ConfirmPayment(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSessionID),
			errors.Is(err, payment.ErrInvalidSessionParcel):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, payment.ErrSessionNotFound):
			response.Error(w, h.log, http.StatusNotFound, payment.ErrSessionNotFound.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, parcel.ErrParcelNotFound.Error())
		case errors.Is(err, payment.ErrGatewayUnavailable):
			h.log.Error("confirm payment", logger.NewField("error", err), logger.NewField("session_id", sessionID))
			response.Error(w, h.log, http.StatusBadGateway, payment.ErrGatewayUnavailable.Error())
		default:
			h.log.Error("confirm payment", logger.NewField("error", err), logger.NewField("session_id", sessionID))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("payment confirmation",
		logger.NewField("session_id", sessionID),
		logger.NewField("outcome", confirmation.Outcome),
		logger.NewField("transaction_id", confirmation.TransactionID),
	)

	response.JSON(w, h.log, http.StatusOK, toDTO(confirmation))
}

func toDTO(confirmation *entities.PaymentConfirmation) dto.PaymentConfirmation {
	if confirmation.Outcome == entities.ConfirmationNotPaid {
		return dto.PaymentConfirmation{Success: false}
	}

	result := dto.PaymentConfirmation{
		Success:       true,
		TransactionId: pointer.To(confirmation.TransactionID),
		TrackingId:    pointer.To(confirmation.TrackingID),
		ParcelId:      pointer.To(confirmation.ParcelID.String()),
		PaymentId:     pointer.To(confirmation.PaymentID.String()),
	}
	if confirmation.Outcome == entities.ConfirmationAlreadyProcessed {
		result.Message = pointer.To(alreadyProcessedMessage)
	}
	return result
}

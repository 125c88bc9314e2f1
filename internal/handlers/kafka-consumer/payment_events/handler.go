package payment_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/stripe/stripe-go/v76"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/payment"
	"zapshift/pkg/logger"
)

// Handler подтверждает оплаты по событиям платежного шлюза из Kafka.
// Подтверждение идемпотентно, поэтому повторная доставка события безопасна.
type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "payment_events"))

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment events: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, когда сообщение не закоммичено и ConsumeClaim надо прервать:
// оно будет прочитано заново после перезапуска сессии.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	sessionID, eventType, err := decodeEvent(message.Value)
	if err != nil {
		h.log.Error("payment events: bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_type", eventType),
		logger.NewField("session_id", sessionID),
		logger.NewField("offset", message.Offset),
	)

	if !isConfirmingEvent(eventType) {
		msgLog.Info("payment events: event skipped")
		sess.MarkMessage(message, "")
		return false
	}

	confirmation, err := h.paymentService.ConfirmPayment(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("payment events: context cancelled, message will be reprocessed", logger.NewField("error", err))
			return true

		case isPermanent(err):
			msgLog.Error("payment events: event cannot be confirmed, message committed", logger.NewField("error", err))
			sess.MarkMessage(message, "")
			return false

		default:
			msgLog.Warn("payment events: failed to confirm payment, message will be reprocessed", logger.NewField("error", err))
			return true
		}
	}

	msgLog.Info("payment events: processed",
		logger.NewField("outcome", string(confirmation.Outcome)),
		logger.NewField("tracking_id", confirmation.TrackingID),
	)
	sess.MarkMessage(message, "")
	return false
}

// isPermanent отличает ошибки, которые не исчезнут при повторной доставке события.
func isPermanent(err error) bool {
	return errors.Is(err, payment.ErrInvalidSessionID) ||
		errors.Is(err, payment.ErrInvalidSessionParcel) ||
		errors.Is(err, payment.ErrSessionNotFound) ||
		errors.Is(err, parcel.ErrParcelNotFound)
}

var errMissingSessionID = errors.New("event carries no checkout session id")

func decodeEvent(value []byte) (string, stripe.EventType, error) {
	var event stripe.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return "", "", err
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return "", event.Type, errMissingSessionID
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return "", event.Type, err
	}
	if session.ID == "" {
		return "", event.Type, errMissingSessionID
	}
	return session.ID, event.Type, nil
}

func isConfirmingEvent(eventType stripe.EventType) bool {
	switch eventType {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		return true
	default:
		return false
	}
}

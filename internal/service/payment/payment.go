package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"zapshift/internal/entities"
	parcelService "zapshift/internal/service/parcel"
	"zapshift/pkg/tx"
)

// trackingIDAttempts ограничивает повторы при совпадении трекинг-номера.
const trackingIDAttempts = 3

type Payment struct {
	repository    Repository
	parcelService ParcelService
	gateway       Gateway
	trackingIDs   TrackingIDFactory
	txManager     TxManager
}

func New(
	repository Repository,
	parcelService ParcelService,
	gateway Gateway,
	trackingIDs TrackingIDFactory,
	txManager TxManager,
) *Payment {
	return &Payment{
		repository:    repository,
		parcelService: parcelService,
		gateway:       gateway,
		trackingIDs:   trackingIDs,
		txManager:     txManager,
	}
}

// CreateCheckoutSession запрашивает у шлюза страницу оплаты и возвращает ее URL.
// Сумма и название берутся из сохраненной посылки, локальное состояние не меняется.
func (s *Payment) CreateCheckoutSession(ctx context.Context, request entities.CheckoutRequest) (string, error) {
	if request.ParcelID == uuid.Nil {
		return "", ErrInvalidParcelID
	}
	if !isValidCost(request.Cost) {
		return "", ErrInvalidCost
	}
	if request.SenderEmail != "" && !isValidEmail(request.SenderEmail) {
		return "", ErrInvalidEmail
	}

	parcel, err := s.parcelService.GetParcel(ctx, request.ParcelID)
	if err != nil {
		return "", fmt.Errorf("get parcel: %w", err)
	}
	if parcel.PaymentStatus == entities.PaymentPaid {
		return "", ErrParcelAlreadyPaid
	}

	request.Cost = parcel.Cost
	request.ParcelName = parcel.ParcelName
	if request.SenderEmail == "" {
		request.SenderEmail = parcel.SenderEmail
	}

	url, err := s.gateway.CreateSession(ctx, request)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return url, nil
}

// ConfirmPayment сверяет сессию со шлюзом и фиксирует оплату ровно один раз
// на transactionId. Повторные вызовы возвращают already_processed с тем же
// трекинг-номером. Гонка двух подтверждений разрешается уникальным индексом
// transaction_id и serializable транзакцией.
func (s *Payment) ConfirmPayment(ctx context.Context, sessionID string) (*entities.PaymentConfirmation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !isValidSessionID(sessionID) {
		return nil, ErrInvalidSessionID
	}

	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	transactionID := session.PaymentIntent
	if transactionID == "" && session.Paid {
		transactionID = session.ID
	}

	if transactionID != "" {
		existing, err := s.repository.GetByTransactionID(ctx, transactionID)
		if err == nil {
			return s.alreadyProcessed(existing), nil
		}
		if !errors.Is(err, ErrPaymentNotFound) {
			return nil, fmt.Errorf("find payment: %w", err)
		}
	}

	if !session.Paid {
		confirmationsTotal.WithLabelValues(string(entities.ConfirmationNotPaid)).Inc()
		return &entities.PaymentConfirmation{
			Outcome:       entities.ConfirmationNotPaid,
			TransactionID: transactionID,
		}, nil
	}

	parcelID, err := uuid.Parse(session.ParcelID)
	if err != nil || parcelID == uuid.Nil {
		return nil, ErrInvalidSessionParcel
	}

	var recorded *entities.Payment
	for attempt := 1; ; attempt++ {
		recorded, err = s.recordPayment(ctx, session, parcelID, transactionID)
		if errors.Is(err, parcelService.ErrTrackingIDTaken) && attempt < trackingIDAttempts {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, ErrDuplicateTransaction) || errors.Is(err, tx.ErrSerialization) {
			existing, findErr := s.repository.GetByTransactionID(ctx, transactionID)
			if findErr != nil {
				return nil, fmt.Errorf("find concurrently recorded payment: %w", errors.Join(err, findErr))
			}
			return s.alreadyProcessed(existing), nil
		}
		return nil, err
	}

	confirmationsTotal.WithLabelValues(string(entities.ConfirmationSuccess)).Inc()
	return &entities.PaymentConfirmation{
		Outcome:       entities.ConfirmationSuccess,
		TransactionID: recorded.TransactionID,
		TrackingID:    recorded.TrackingID,
		ParcelID:      recorded.ParcelID,
		PaymentID:     recorded.ID,
	}, nil
}

// recordPayment выдает новый трекинг-номер и в одной транзакции отмечает
// посылку оплаченной и записывает платеж.
func (s *Payment) recordPayment(
	ctx context.Context,
	session *entities.CheckoutSession,
	parcelID uuid.UUID,
	transactionID string,
) (*entities.Payment, error) {
	now := time.Now().UTC()
	trackingID, err := s.trackingIDs.New(now)
	if err != nil {
		return nil, fmt.Errorf("generate tracking id: %w", err)
	}

	var recorded *entities.Payment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.parcelService.MarkPaid(ctx, parcelID, trackingID)
		if err != nil {
			return fmt.Errorf("mark parcel paid: %w", err)
		}

		payment := entities.Payment{
			TransactionID: transactionID,
			Amount:        float64(session.AmountTotal) / 100,
			Currency:      session.Currency,
			CustomerEmail: session.CustomerEmail,
			ParcelID:      parcelID,
			ParcelName:    session.ParcelName,
			PaymentStatus: session.PaymentStatus,
			TrackingID:    trackingID,
			PaidAt:        now,
		}
		if parcel.TrackingID != nil {
			payment.TrackingID = *parcel.TrackingID
		}
		if payment.CustomerEmail == "" {
			payment.CustomerEmail = parcel.SenderEmail
		}
		if payment.ParcelName == "" {
			payment.ParcelName = parcel.ParcelName
		}

		recorded, err = s.repository.Create(ctx, payment)
		if err != nil {
			return fmt.Errorf("record payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// GetPayments возвращает платежи, новые первыми. Пустой customerEmail - все платежи.
func (s *Payment) GetPayments(ctx context.Context, customerEmail *string) ([]entities.Payment, error) {
	if customerEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*customerEmail))
		customerEmail = &email
	}

	payments, err := s.repository.List(ctx, customerEmail)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	return payments, nil
}

func (s *Payment) alreadyProcessed(existing *entities.Payment) *entities.PaymentConfirmation {
	confirmationsTotal.WithLabelValues(string(entities.ConfirmationAlreadyProcessed)).Inc()
	return &entities.PaymentConfirmation{
		Outcome:       entities.ConfirmationAlreadyProcessed,
		TransactionID: existing.TransactionID,
		TrackingID:    existing.TrackingID,
		ParcelID:      existing.ParcelID,
		PaymentID:     existing.ID,
	}
}

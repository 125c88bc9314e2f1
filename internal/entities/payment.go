package entities

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID
	TransactionID string
	Amount        float64
	Currency      string
	CustomerEmail string
	ParcelID      uuid.UUID
	ParcelName    string
	PaymentStatus string
	TrackingID    string
	PaidAt        time.Time
}

type CheckoutRequest struct {
	ParcelID    uuid.UUID
	ParcelName  string
	SenderEmail string
	Cost        float64
}

// CheckoutSession авторитетное состояние сессии оплаты, полученное от платёжного шлюза.
type CheckoutSession struct {
	ID            string
	PaymentIntent string
	Paid          bool
	PaymentStatus string
	AmountTotal   int64 // в минимальных единицах валюты
	Currency      string
	CustomerEmail string
	ParcelID      string
	ParcelName    string
}

type ConfirmationOutcome string

const (
	ConfirmationSuccess          ConfirmationOutcome = "success"
	ConfirmationAlreadyProcessed ConfirmationOutcome = "already_processed"
	ConfirmationNotPaid          ConfirmationOutcome = "not_paid"
)

type PaymentConfirmation struct {
	Outcome       ConfirmationOutcome
	TransactionID string
	TrackingID    string
	ParcelID      uuid.UUID
	PaymentID     uuid.UUID
}

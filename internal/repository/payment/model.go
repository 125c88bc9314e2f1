package payment

import (
	"time"

	"github.com/google/uuid"
)

type PaymentDB struct {
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

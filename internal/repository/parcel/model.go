package parcel

import (
	"time"

	"github.com/google/uuid"
)

type ParcelDB struct {
	ID             uuid.UUID
	SenderEmail    string
	ParcelName     string
	Cost           float64
	PaymentStatus  string
	DeliveryStatus string
	TrackingID     *string
	RiderID        *uuid.UUID
	RiderName      *string
	RiderEmail     *string
	RiderPhone     *string
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}

type ParcelModifyDB struct {
	ID             *uuid.UUID
	SenderEmail    *string
	ParcelName     *string
	Cost           *float64
	PaymentStatus  *string
	DeliveryStatus *string
	TrackingID     *string
	RiderID        *uuid.UUID
	RiderName      *string
	RiderEmail     *string
	RiderPhone     *string
	CreatedAt      *time.Time
	DeliveredAt    *time.Time
}

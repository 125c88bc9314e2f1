package entities

import (
	"time"

	"github.com/google/uuid"
)

type Parcel struct {
	ID             uuid.UUID
	SenderEmail    string
	ParcelName     string
	Cost           float64
	PaymentStatus  PaymentStatusType
	DeliveryStatus DeliveryStatusType
	TrackingID     *string
	Rider          *ParcelRider
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}

// ParcelRider данные назначенного райдера. Либо заполнены все поля, либо parcel.Rider == nil.
type ParcelRider struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryNone           DeliveryStatusType = ""
	DeliveryPendingPickup  DeliveryStatusType = "pending-pickup"
	DeliveryDriverAssigned DeliveryStatusType = "driver_assigned"
	DeliveryDelivered      DeliveryStatusType = "delivered"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

type ParcelModify struct {
	ID             *uuid.UUID
	SenderEmail    *string
	ParcelName     *string
	Cost           *float64
	PaymentStatus  *PaymentStatusType
	DeliveryStatus *DeliveryStatusType
	TrackingID     *string
	Rider          *ParcelRider
	CreatedAt      *time.Time
	DeliveredAt    *time.Time
}

type ParcelFilter struct {
	SenderEmail    *string
	DeliveryStatus *DeliveryStatusType
}

type RiderAssignment struct {
	ParcelID uuid.UUID
	Rider    ParcelRider
}

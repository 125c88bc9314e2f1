package entities

import (
	"time"

	"github.com/google/uuid"
)

type Rider struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	RiderDistrict string
	Status        RiderStatusType
	WorkStatus    RiderWorkStatusType
	CreatedAt     time.Time
}

type RiderStatusType string

const (
	RiderPending  RiderStatusType = "pending"
	RiderApproved RiderStatusType = "approved"
	RiderRejected RiderStatusType = "rejected"
)

func (t RiderStatusType) String() string {
	return string(t)
}

type RiderWorkStatusType string

const (
	RiderWorkUnset      RiderWorkStatusType = ""
	RiderWorkAvailable  RiderWorkStatusType = "available"
	RiderWorkInDelivery RiderWorkStatusType = "in_delivery"
)

func (t RiderWorkStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID            *uuid.UUID
	Name          *string
	Email         *string
	Phone         *string
	RiderDistrict *string
	Status        *RiderStatusType
	WorkStatus    *RiderWorkStatusType
}

type RiderFilter struct {
	Status        *RiderStatusType
	RiderDistrict *string
	WorkStatus    *RiderWorkStatusType
}

package rider

import (
	"time"

	"github.com/google/uuid"
)

type RiderDB struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	RiderDistrict string
	Status        string
	WorkStatus    string
	CreatedAt     time.Time
}

type RiderModifyDB struct {
	ID            *uuid.UUID
	Name          *string
	Email         *string
	Phone         *string
	RiderDistrict *string
	Status        *string
	WorkStatus    *string
}

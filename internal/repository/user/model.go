package user

import (
	"time"

	"github.com/google/uuid"
)

type UserDB struct {
	ID        uuid.UUID
	Email     string
	Name      string
	PhotoURL  string
	Role      string
	CreatedAt time.Time
}

type UserModifyDB struct {
	ID       *uuid.UUID
	Email    *string
	Name     *string
	PhotoURL *string
	Role     *string
}

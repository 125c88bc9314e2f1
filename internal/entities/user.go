package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	PhotoURL  string
	Role      UserRoleType
	CreatedAt time.Time
}

type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleAdmin UserRoleType = "admin"
	RoleRider UserRoleType = "rider"
)

const DefaultRole = RoleUser

func (t UserRoleType) String() string {
	return string(t)
}

type UserModify struct {
	ID       *uuid.UUID
	Email    *string
	Name     *string
	PhotoURL *string
	Role     *UserRoleType
}

// Identity проверенная личность вызывающего, полученная от провайдера идентификации.
type Identity struct {
	Email   string
	Subject string
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"zapshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Search(ctx context.Context, text string, limit uint64) ([]entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (*entities.User, error)
}

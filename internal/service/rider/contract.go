//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"github.com/google/uuid"
	"zapshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Rider, error)
	List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error)
	Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
	ReleaseIdle(ctx context.Context) (int64, error)
}

type UserService interface {
	PromoteToRider(ctx context.Context, email string) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

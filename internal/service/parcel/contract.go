//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"github.com/google/uuid"
	"zapshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Parcel, error)
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	Update(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RiderService interface {
	GetRider(ctx context.Context, id uuid.UUID) (*entities.Rider, error)
	UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

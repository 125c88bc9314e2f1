//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"zapshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error)
	List(ctx context.Context, customerEmail *string) ([]entities.Payment, error)
}

type ParcelService interface {
	GetParcel(ctx context.Context, id uuid.UUID) (*entities.Parcel, error)
	MarkPaid(ctx context.Context, id uuid.UUID, trackingID string) (*entities.Parcel, error)
}

type Gateway interface {
	CreateSession(ctx context.Context, request entities.CheckoutRequest) (string, error)
	GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error)
}

type TrackingIDFactory interface {
	New(now time.Time) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

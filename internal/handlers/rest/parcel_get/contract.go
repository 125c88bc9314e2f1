//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_get_test
package parcel_get

import (
	"context"

	"github.com/google/uuid"
	"zapshift/internal/entities"
	"zapshift/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetParcel(ctx context.Context, id uuid.UUID) (*entities.Parcel, error)
}

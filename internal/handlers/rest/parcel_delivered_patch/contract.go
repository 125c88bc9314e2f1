//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_delivered_patch_test
package parcel_delivered_patch

import (
	"context"

	"github.com/google/uuid"
	"zapshift/internal/entities"
	"zapshift/internal/service/access"
	"zapshift/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Policy interface {
	Authorize(ctx context.Context, request access.Request) (*access.Decision, error)
}

type Service interface {
	MarkDelivered(ctx context.Context, id uuid.UUID, riderEmail *string) (*entities.Parcel, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_patch_test
package rider_patch

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
	ChangeRiderStatus(ctx context.Context, id uuid.UUID, status entities.RiderStatusType) (*entities.Rider, error)
}

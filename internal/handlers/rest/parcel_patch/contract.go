//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_patch_test
package parcel_patch

import (
	"context"

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
	AssignRider(ctx context.Context, assignment entities.RiderAssignment) (*entities.Parcel, error)
}

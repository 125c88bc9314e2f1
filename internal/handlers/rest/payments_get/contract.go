//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payments_get_test
package payments_get

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
	GetPayments(ctx context.Context, customerEmail *string) ([]entities.Payment, error)
}

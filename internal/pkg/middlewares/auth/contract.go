//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"zapshift/internal/entities"
	"zapshift/pkg/logger"
)

type Verifier interface {
	Verify(ctx context.Context, token string) (*entities.Identity, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

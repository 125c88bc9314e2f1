//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_session_post_test
package checkout_session_post

import (
	"context"

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
	CreateCheckoutSession(ctx context.Context, request entities.CheckoutRequest) (string, error)
}

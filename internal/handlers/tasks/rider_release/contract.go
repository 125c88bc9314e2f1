//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_release_test
package rider_release

import (
	"context"

	"zapshift/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type Service interface {
	ReleaseIdleRiders(ctx context.Context) (int64, error)
}

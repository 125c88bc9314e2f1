//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=access_test
package access

import (
	"context"

	"zapshift/internal/entities"
)

type UserService interface {
	GetUserRole(ctx context.Context, email string) (entities.UserRoleType, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"github.com/stripe/stripe-go/v76"
)

type sessionClient interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

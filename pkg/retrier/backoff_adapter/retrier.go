package backoff_adapter

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"zapshift/pkg/retrier"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	policy := backoff.WithContext(r.newBackOff(), ctx)

	operation := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	if r.config.Notify == nil {
		return backoff.Retry(operation, policy)
	}
	return backoff.RetryNotify(operation, policy, backoff.Notify(r.config.Notify))
}

func (r *Retrier) newBackOff() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
}

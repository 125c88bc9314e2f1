package rider_release

import (
	"context"
	"fmt"
	"time"

	"zapshift/pkg/logger"
)

// RiderRelease возвращает в available райдеров, оставшихся in_delivery без активных посылок.
type RiderRelease struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewRiderRelease(log taskLogger, service Service, interval time.Duration) *RiderRelease {
	return &RiderRelease{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RiderRelease) TTL() time.Duration {
	return r.interval
}

func (r *RiderRelease) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	released, err := r.service.ReleaseIdleRiders(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("release idle riders: %w", err)
	}

	if released > 0 {
		r.log.Info("rider release", logger.NewField("released_riders", released))
	}
	return nil
}

func (r *RiderRelease) Info() string {
	return "rider release"
}

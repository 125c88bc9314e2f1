package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"zapshift/internal/entities"
	"zapshift/internal/service/payment"
	retrierconfig "zapshift/pkg/retrier"
	"zapshift/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "stripe"

	successPath = "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/dashboard/payment-cancelled"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	Currency   string
	SiteDomain string
}

type CheckoutGateway struct {
	client  sessionClient
	retrier retrier
	config  Config
}

func New(client sessionClient, config Config) *CheckoutGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &CheckoutGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		config:  config,
	}
}

func (g *CheckoutGateway) CreateSession(ctx context.Context, request entities.CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.config.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(request.Cost)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(request.ParcelName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(request.SenderEmail),
		SuccessURL:    stripe.String(g.config.SiteDomain + successPath),
		CancelURL:     stripe.String(g.config.SiteDomain + cancelPath),
	}
	params.Context = ctx
	params.AddMetadata(metadataParcelID, request.ParcelID.String())
	params.AddMetadata(metadataParcelName, request.ParcelName)
	// Повторы одного вызова не должны создавать несколько сессий.
	params.SetIdempotencyKey(uuid.NewString())

	var session *stripe.CheckoutSession

	err := g.executeWithMetrics(ctx, "CreateSession", func(ctx context.Context) error {
		var err error
		session, err = g.client.New(params)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway checkout, create session: %w", mapError(err))
	}

	return session.URL, nil
}

func (g *CheckoutGateway) GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	var session *stripe.CheckoutSession

	err := g.executeWithMetrics(ctx, "GetSession", func(ctx context.Context) error {
		var err error
		session, err = g.client.Get(sessionID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway checkout, get session: %s: %w", sessionID, mapError(err))
	}

	return toDomainSession(session), nil
}

func mapError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
		return fmt.Errorf("%w: %s", payment.ErrSessionNotFound, stripeErr.Msg)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", payment.ErrGatewayUnavailable, err)
}

func isRetryable(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}

	return stripeErr.HTTPStatusCode == http.StatusTooManyRequests ||
		stripeErr.HTTPStatusCode >= http.StatusInternalServerError
}

func (g *CheckoutGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode != 0 {
		return strconv.Itoa(stripeErr.HTTPStatusCode)
	}
	return "UNKNOWN"
}

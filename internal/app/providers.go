package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stripe/stripe-go/v76/client"
	"zapshift/internal/gateway/identity"
	"zapshift/internal/gateway/stripe/checkout"
	"zapshift/internal/handlers/tasks/rider_release"
	"zapshift/internal/pkg/config"
	parcelRepo "zapshift/internal/repository/parcel"
	paymentRepo "zapshift/internal/repository/payment"
	riderRepo "zapshift/internal/repository/rider"
	userRepo "zapshift/internal/repository/user"
	"zapshift/internal/service/access"
	parcelService "zapshift/internal/service/parcel"
	paymentService "zapshift/internal/service/payment"
	riderService "zapshift/internal/service/rider"
	userService "zapshift/internal/service/user"
	"zapshift/pkg/background"
	"zapshift/pkg/logger"
	"zapshift/pkg/querier"
	"zapshift/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideUserService(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideRiderService(
	repository riderService.Repository,
	users riderService.UserService,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, users, txManager)
}

func provideParcelService(
	repository parcelService.Repository,
	riders parcelService.RiderService,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, riders, txManager)
}

func providePaymentService(
	repository paymentService.Repository,
	parcels paymentService.ParcelService,
	gateway paymentService.Gateway,
	trackingIDs paymentService.TrackingIDFactory,
	txManager paymentService.TxManager,
) *paymentService.Payment {
	return paymentService.New(repository, parcels, gateway, trackingIDs, txManager)
}

// provideCheckoutGateway собирает клиент Stripe с собственным ключом, без глобального stripe.Key.
func provideCheckoutGateway(cfg *config.Config) *checkout.CheckoutGateway {
	stripeClient := &client.API{}
	stripeClient.Init(cfg.Payment.StripeSecretKey, nil)

	return checkout.New(stripeClient.CheckoutSessions, checkout.Config{
		Currency:   cfg.Payment.Currency,
		SiteDomain: cfg.Payment.SiteDomain,
	})
}

func provideAccessPolicy(users access.UserService) *access.Policy {
	return access.New(users)
}

func provideIdentityVerifier(ctx context.Context, cfg *config.Config, log logger.Logger) (*identity.Verifier, error) {
	return identity.New(ctx, cfg.Identity, log)
}

func provideRiderReleaseTask(
	log logger.Logger,
	riders rider_release.Service,
	cfg *config.Config,
) *rider_release.RiderRelease {
	return rider_release.NewRiderRelease(log, riders, cfg.Tasks.RiderReleaseInterval)
}

func provideTaskList(riderReleaseTask *rider_release.RiderRelease) []background.Task {
	return []background.Task{
		riderReleaseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

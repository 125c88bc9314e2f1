//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"zapshift/internal/gateway/identity"
	"zapshift/internal/gateway/stripe/checkout"
	"zapshift/internal/handlers/tasks/rider_release"
	"zapshift/internal/pkg/config"
	"zapshift/internal/pkg/factory/tracking_id"
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

var domainSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideParcelRepository,
	providePaymentRepository,
	provideRiderRepository,
	provideUserRepository,

	provideUserService,
	provideRiderService,
	provideParcelService,
	providePaymentService,
	provideCheckoutGateway,
	tracking_id.New,

	wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
	wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
	wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
	wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

	wire.Bind(new(riderService.UserService), new(*userService.User)),
	wire.Bind(new(parcelService.RiderService), new(*riderService.Rider)),
	wire.Bind(new(paymentService.ParcelService), new(*parcelService.Parcel)),
	wire.Bind(new(paymentService.Gateway), new(*checkout.CheckoutGateway)),
	wire.Bind(new(paymentService.TrackingIDFactory), new(*tracking_id.TrackingIDFactory)),

	wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
	wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
	wire.Bind(new(riderService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		domainSet,

		provideAccessPolicy,
		provideIdentityVerifier,

		provideRiderReleaseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(AccessPolicy), new(*access.Policy)),
		wire.Bind(new(IdentityVerifier), new(*identity.Verifier)),
		wire.Bind(new(access.UserService), new(*userService.User)),
		wire.Bind(new(rider_release.Service), new(*riderService.Rider)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		domainSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

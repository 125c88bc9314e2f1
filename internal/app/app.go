package app

import (
	"zapshift/internal/handlers/rest/checkout_session_post"
	"zapshift/internal/handlers/rest/parcel_delete"
	"zapshift/internal/handlers/rest/parcel_delivered_patch"
	"zapshift/internal/handlers/rest/parcel_get"
	"zapshift/internal/handlers/rest/parcel_patch"
	"zapshift/internal/handlers/rest/parcel_post"
	"zapshift/internal/handlers/rest/parcels_get"
	"zapshift/internal/handlers/rest/payment_success_patch"
	"zapshift/internal/handlers/rest/payments_get"
	"zapshift/internal/handlers/rest/rider_patch"
	"zapshift/internal/handlers/rest/rider_post"
	"zapshift/internal/handlers/rest/riders_get"
	"zapshift/internal/handlers/rest/user_post"
	"zapshift/internal/handlers/rest/user_role_get"
	"zapshift/internal/handlers/rest/user_role_patch"
	"zapshift/internal/handlers/rest/users_get"
	"zapshift/internal/pkg/middlewares/auth"
	paymentService "zapshift/internal/service/payment"
	"zapshift/pkg/background"
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServicePayment    ServicePayment
	ServiceUser       ServiceUser
	ServiceRider      ServiceRider
	Policy            AccessPolicy
	Verifier          IdentityVerifier
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcels_get.Service
	parcel_get.Service
	parcel_post.Service
	parcel_patch.Service
	parcel_delete.Service
	parcel_delivered_patch.Service
}

type ServicePayment interface {
	checkout_session_post.Service
	payment_success_patch.Service
	payments_get.Service
}

type ServiceUser interface {
	users_get.Service
	user_role_get.Service
	user_post.Service
	user_role_patch.Service
}

type ServiceRider interface {
	riders_get.Service
	rider_post.Service
	rider_patch.Service
}

type AccessPolicy interface {
	parcel_patch.Policy
	parcel_delivered_patch.Policy
	payments_get.Policy
	users_get.Policy
	user_role_patch.Policy
	rider_patch.Policy
}

type IdentityVerifier interface {
	auth.Verifier
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Payment
}

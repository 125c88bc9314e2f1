package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidCost           = errors.New("invalid cost")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrInvalidSessionParcel  = errors.New("session has no valid parcel reference")

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDuplicateTransaction = errors.New("payment with this transaction id already exists")
	ErrParcelAlreadyPaid    = errors.New("parcel already paid")

	ErrSessionNotFound    = errors.New("checkout session not found")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidParcelName     = errors.New("invalid parcel name")
	ErrInvalidCost           = errors.New("invalid cost")
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrInvalidTrackingID     = errors.New("invalid tracking id")
	ErrInvalidRiderID        = errors.New("invalid rider id")

	ErrParcelNotFound   = errors.New("parcel not found")
	ErrParcelNotPaid    = errors.New("parcel is not paid")
	ErrParcelDelivered  = errors.New("parcel already delivered")
	ErrParcelNotInRoute = errors.New("parcel is not assigned to a rider")
	ErrRiderNotApproved = errors.New("rider is not approved")
	ErrRiderUnavailable = errors.New("rider unavailable")
	ErrNotAssignedRider = errors.New("caller is not the assigned rider")
	ErrTrackingIDTaken  = errors.New("tracking id already taken")
)

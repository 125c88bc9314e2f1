package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidStatus         = errors.New("invalid rider status")
	ErrInvalidWorkStatus     = errors.New("invalid rider work status")
	ErrInvalidRiderID        = errors.New("invalid rider id")

	ErrRiderNotFound       = errors.New("rider not found")
	ErrRiderAlreadyApplied = errors.New("rider already applied")
)

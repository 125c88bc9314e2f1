package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidUserID         = errors.New("invalid user id")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

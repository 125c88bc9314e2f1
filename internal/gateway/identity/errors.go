package identity

import "errors"

var (
	ErrInvalidToken = errors.New("invalid identity token")
	ErrMissingEmail = errors.New("identity token has no email claim")
	ErrInvalidKey   = errors.New("invalid identity public key")
)

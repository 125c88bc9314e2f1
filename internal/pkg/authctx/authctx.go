package authctx

import (
	"context"

	"zapshift/internal/entities"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, identity *entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// Identity возвращает проверенную личность или nil для анонимного запроса.
func Identity(ctx context.Context) *entities.Identity {
	identity, _ := ctx.Value(identityKey{}).(*entities.Identity)
	return identity
}

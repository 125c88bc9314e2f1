package identity

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"zapshift/internal/entities"
	"zapshift/internal/pkg/config"
	"zapshift/pkg/logger"
)

const leeway = 30 * time.Second

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Verifier struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

// New загружает ключ провайдера и собирает верификатор.
func New(ctx context.Context, cfg config.Identity, log logger.Logger) (*Verifier, error) {
	key, err := FetchPublicKey(ctx, http.DefaultClient, cfg.PublicKeyURL, log)
	if err != nil {
		return nil, fmt.Errorf("identity verifier: %w", err)
	}
	return NewWithKey(key, cfg.Issuer, cfg.Audience), nil
}

func NewWithKey(publicKey *rsa.PublicKey, issuer, audience string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &Verifier{
		publicKey: publicKey,
		parser:    jwt.NewParser(opts...),
	}
}

func (v *Verifier) Verify(_ context.Context, token string) (*entities.Identity, error) {
	var c claims

	_, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return v.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMissingEmail)
	}

	return &entities.Identity{
		Email:   email,
		Subject: c.Subject,
	}, nil
}

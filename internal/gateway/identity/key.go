package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"zapshift/pkg/logger"
	retrierconfig "zapshift/pkg/retrier"
	"zapshift/pkg/retrier/backoff_adapter"
)

const (
	keyFetchTimeout = 5 * time.Second
	maxKeySize      = 64 << 10
)

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type keyResponse struct {
	Key string `json:"key"`
}

// FetchPublicKey загружает PEM-ключ провайдера идентификации.
// Ответ либо JSON вида {"key": "<PEM>"}, либо сам PEM.
func FetchPublicKey(ctx context.Context, client *http.Client, url string, log logger.Logger) (*rsa.PublicKey, error) {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, wait time.Duration) {
			log.Warn("identity public key fetch failed, retrying",
				logger.NewField("error", err),
				logger.NewField("retry_in", wait),
			)
		},
	}

	var body []byte
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		body, err = download(ctx, client, url)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch public key: %w", err)
	}

	return ParsePublicKey(body)
}

func ParsePublicKey(body []byte) (*rsa.PublicKey, error) {
	pemBytes := body

	var resp keyResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Key != "" {
		pemBytes = []byte(resp.Key)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

func download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, keyFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxKeySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

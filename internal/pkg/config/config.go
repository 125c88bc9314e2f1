package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultCurrency = "usd"

type (
	Logger struct {
		Level string
	}

	Tasks struct {
		RiderReleaseInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
	}

	Payment struct {
		StripeSecretKey string
		Currency        string
		SiteDomain      string
	}

	Identity struct {
		PublicKeyURL string
		Issuer       string
		Audience     string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentEvents PaymentEvents
	}

	PaymentEvents struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Logger   Logger
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Payment  Payment
		Identity Identity
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	riderReleaseInterval, err := osGetEnvDuration("BACKGROUND_RIDER_RELEASE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentEventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_EVENTS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	currency := strings.ToLower(os.Getenv("STRIPE_CURRENCY"))
	if currency == "" {
		currency = defaultCurrency
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Logger: Logger{
			Level: logLevel,
		},
		Tasks: Tasks{
			RiderReleaseInterval: riderReleaseInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
		},
		Payment: Payment{
			StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			Currency:        currency,
			SiteDomain:      strings.TrimRight(os.Getenv("PAYMENT_SITE_DOMAIN"), "/"),
		},
		Identity: Identity{
			PublicKeyURL: os.Getenv("IDENTITY_PUBLIC_KEY_URL"),
			Issuer:       os.Getenv("IDENTITY_ISSUER"),
			Audience:     os.Getenv("IDENTITY_AUDIENCE"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentEvents: PaymentEvents{
					ProcessTimeout: paymentEventsTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.RiderReleaseInterval == time.Duration(0) {
		return errors.New("BACKGROUND_RIDER_RELEASE_INTERVAL is required")
	}

	if cfg.Payment.StripeSecretKey == "" {
		return errors.New("STRIPE_SECRET_KEY is required")
	}
	if cfg.Payment.SiteDomain == "" {
		return errors.New("PAYMENT_SITE_DOMAIN is required")
	}

	if cfg.Identity.PublicKeyURL == "" {
		return errors.New("IDENTITY_PUBLIC_KEY_URL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PaymentEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_EVENTS_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

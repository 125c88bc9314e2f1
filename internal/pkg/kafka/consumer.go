package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"zapshift/internal/pkg/config"
	"zapshift/pkg/logger"
	retrierconfig "zapshift/pkg/retrier"
	"zapshift/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(cfg config.Sarama) (*sarama.Config, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.ClientID = "zapshift-payment-events"
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	saramaConfig.Consumer.Return.Errors = true

	return saramaConfig, nil
}

// ParseBrokers разбирает список брокеров через запятую.
func ParseBrokers(brokers string) []string {
	var result []string
	for _, broker := range strings.Split(brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			result = append(result, broker)
		}
	}
	return result
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := ParseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	saramaConfig, err := NewSaramaConfig(cfg.Sarama)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  []string{cfg.Topic},
		handler: handler,
	}, nil
}

// Start блокируется, пока ctx не отменен или Consume не вернул ошибку.
// Consume завершается на каждом ребалансе, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	go c.logErrors(ctx)

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.log.Error("kafka consume", logger.NewField("error", err))
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopping")
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

func (c *Consumer) logErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-c.client.Errors():
			if !ok {
				return
			}
			c.log.Warn("kafka consumer group error", logger.NewField("error", err))
		}
	}
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	var attempt uint64
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, next time.Duration) {
			log.Warn("kafka is not reachable yet",
				logger.NewField("error", err),
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", next.String()),
			)
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("close kafka ping client", logger.NewField("error", err))
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		return fmt.Errorf("connect to kafka after %d attempts: %w", attempt, err)
	}

	log.Info("kafka connection established", logger.NewField("attempts", attempt))
	return nil
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/jitter"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	ensureTopicBaseDelay = 500 * time.Millisecond
	ensureTopicMaxDelay  = 10 * time.Second
)

// Producer публикует доменные события в Kafka. Запись асинхронная,
// ошибки доставки приходят в Completion и только логируются.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error, messages: %d: %s", len(messages), err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// Publish ставит событие в очередь на отправку. Ключ сообщения - ID агрегата,
// поэтому события одного заказа или товара попадают в одну партицию.
func (p *Producer) Publish(ctx context.Context, event *usecase.Event) error {
	msg, err := NewMessage(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureTopic создаёт топик, если его нет. Между попытками выдерживается
// экспоненциальная задержка с джиттером.
func (p *Producer) EnsureTopic(ctx context.Context) error {
	attempts := max(p.cfg.EnsureAttempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = p.ensureTopic(); err == nil {
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		delay := jitter.Exponential(ensureTopicBaseDelay, ensureTopicMaxDelay, attempt, jitter.DefaultFactor)
		p.logger.Warnf("Kafka topic %s is not ready, retry in %s: %v", p.cfg.Topic, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return e.Wrap(whereami.WhereAmI(), ctx.Err())
		}
	}

	return e.Wrap(whereami.WhereAmI(), fmt.Errorf("topic %s after %d attempts: %w", p.cfg.Topic, attempts, err))
}

func (p *Producer) ensureTopic() error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return err
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	return conn.CreateTopics(kafka.TopicConfig{
		Topic:             p.cfg.Topic,
		NumPartitions:     p.cfg.Partitions,
		ReplicationFactor: p.cfg.ReplicationFactor,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NewMessage кодирует событие в JSON-сообщение Kafka.
func NewMessage(event *usecase.Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: value,
		Time:  event.OccurredAt,
	}, nil
}

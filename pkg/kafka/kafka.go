package kafka

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const LibraryEventsTopic = "library-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// EventProducer publishes JSON encoded events keyed by a partition key so
// that events for one key stay ordered.
type EventProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventProducer(producer sarama.SyncProducer, topic string) *EventProducer {
	if topic == "" {
		topic = LibraryEventsTopic
	}
	return &EventProducer{
		producer: producer,
		topic:    topic,
	}
}

func (p *EventProducer) Publish(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "send message")
	}
	return nil
}

func (p *EventProducer) Close() error {
	return p.producer.Close()
}

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/akmurmu82/library-management-app/pkg/kafka"
	"github.com/stretchr/testify/require"
)

func TestEventProducer_Publish(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)

	var got *sarama.ProducerMessage
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		got = msg
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := kafka.NewEventProducer(producer, "")
	defer func() { require.NoError(t, p.Close()) }()

	type event struct {
		Type string `json:"type"`
	}
	require.NoError(t, p.Publish(context.Background(), "user-1", event{Type: "book_added"}))
	require.Equal(t, kafka.LibraryEventsTopic, got.Topic)

	key, err := got.Key.Encode()
	require.NoError(t, err)
	require.Equal(t, "user-1", string(key))

	value, err := got.Value.Encode()
	require.NoError(t, err)
	var decoded event
	require.NoError(t, json.Unmarshal(value, &decoded))
	require.Equal(t, "book_added", decoded.Type)

	err = p.Publish(context.Background(), "user-1", event{Type: "book_removed"})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestEventProducer_Publish_Canceled(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	p := kafka.NewEventProducer(producer, "custom")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, "k", struct{}{}), context.Canceled)
	require.NoError(t, p.Close())
}

func TestConfig_Enabled(t *testing.T) {
	require.False(t, kafka.Config{}.Enabled())
	require.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}

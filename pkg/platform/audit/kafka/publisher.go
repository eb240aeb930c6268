// Package kafka publishes audit events to a Kafka topic.
//
// Delivery is synchronous: approval decisions are the only mutating path in
// the system and regulators expect their audit trail to be complete, so the
// caller blocks until the broker acknowledges the record.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"aceaudit/pkg/platform/audit"
)

// Publisher emits audit events as JSON records keyed by event ID.
type Publisher struct {
	client *kgo.Client
}

// New connects to the given brokers and produces to topic.
func New(brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	return &Publisher{client: client}, nil
}

// Emit synchronously produces one audit record. Returns an error if the
// broker does not acknowledge, so callers can decide whether to fail closed.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	record := &kgo.Record{
		Key:   []byte(event.EventID.String()),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying client.
func (p *Publisher) Close() error {
	p.client.Close()
	return nil
}

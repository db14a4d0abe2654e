// Package kafka publishes domain events to a Kafka topic. Kafka is the
// durable record of issuance activity; downstream consumers (indexers,
// notification fan-out) read from the topic rather than from this service.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	events "mintgate/pkg/platform/events"
	"mintgate/pkg/platform/sentinel"
)

// Sink implements events.Store by producing one record per event. Records are
// keyed by the subject address so per-address ordering is preserved across
// partitions.
type Sink struct {
	client *kgo.Client
	topic  string
}

// payload is the JSON structure produced to Kafka. Field names are part of
// the consumer contract; change them only with a topic version bump.
type payload struct {
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Address   string `json:"address,omitempty"`
	TokenID   uint64 `json:"token_id,omitempty"`
	TokenURI  string `json:"token_uri,omitempty"`
	Enabled   bool   `json:"enabled,omitempty"`
	Amount    uint64 `json:"amount,omitempty"`
	Value     string `json:"value,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// New connects to the brokers and ensures the topic exists. A single
// partition keeps global event ordering; raise it only if consumers can
// tolerate per-address ordering instead.
func New(ctx context.Context, brokers []string, topic string) (*Sink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}

	adm := kadm.NewClient(client)
	res, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range res {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			client.Close()
			return nil, fmt.Errorf("create topic %s: %w", topic, r.Err)
		}
	}

	return &Sink{client: client, topic: topic}, nil
}

// Append produces the event synchronously so the caller observes broker
// failures.
func (s *Sink) Append(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(payload{
		Name:      string(event.Name),
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		Address:   event.Address.String(),
		TokenID:   uint64(event.TokenID),
		TokenURI:  event.TokenURI,
		Enabled:   event.Enabled,
		Amount:    event.Amount,
		Value:     event.Value,
		RequestID: event.RequestID,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	rec := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Address),
		Value: body,
	}
	if err := s.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce event: %w", err)
	}
	return nil
}

// List is not supported: Kafka is write-only from this side. Consumers read
// the topic directly.
func (s *Sink) List(context.Context) ([]events.Event, error) {
	return nil, sentinel.ErrUnavailable
}

func (s *Sink) Close() {
	s.client.Close()
}

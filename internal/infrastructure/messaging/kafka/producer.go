package kafka

import (
	"encoding/json"
	"fmt"
	"sync"

	"ftwallet/internal/pkg/logging"

	"github.com/IBM/sarama"
)

// Producer wraps a Sarama synchronous producer for the wallet audit stream.
type Producer struct {
	producer sarama.SyncProducer
	config   *Config
	mu       sync.RWMutex
	closed   bool
}

// NewProducer dials the configured brokers and returns a ready Producer.
func NewProducer(config *Config) (*Producer, error) {
	saramaConfig, err := config.ToSaramaConfig()
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to build sarama config: %w", err)
	}

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to create producer: %w", err)
	}

	logging.Info("kafka producer initialized", map[string]interface{}{
		"brokers":   config.Brokers,
		"client_id": config.ClientID,
	})

	return &Producer{producer: producer, config: config}, nil
}

// PublishEvent serializes event to JSON and sends it to topic keyed by key.
// Audit publication is never on the ledger's critical path: callers log and
// swallow the returned error rather than failing the originating request.
func (p *Producer) PublishEvent(topic, key string, event interface{}) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return fmt.Errorf("kafka: producer is closed")
	}
	p.mu.RUnlock()

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(eventJSON),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka: failed to send message to topic %s: %w", topic, err)
	}

	logging.Debug("kafka event published", map[string]interface{}{
		"topic":     topic,
		"partition": partition,
		"offset":    offset,
		"key":       key,
	})
	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("kafka: failed to close producer: %w", err)
	}
	return nil
}

// IsHealthy reports whether the producer can still accept publishes.
func (p *Producer) IsHealthy() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}

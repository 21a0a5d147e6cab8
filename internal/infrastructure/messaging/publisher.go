package messaging

import (
	"ftwallet/internal/infrastructure/messaging/kafka"
	"ftwallet/internal/pkg/idempotency"
)

// EventPublisher is the interface the HTTP adapter publishes audit events
// through — a KafkaEventPublisher when KAFKA_ENABLED is true, a
// NoOpEventPublisher otherwise.
type EventPublisher interface {
	PublishDepositCompleted(event DepositCompletedEvent) error
	PublishWithdrawalCompleted(event WithdrawalCompletedEvent) error
	PublishTransactionRejected(event TransactionRejectedEvent) error
	Close() error
	IsHealthy() bool
}

// KafkaEventPublisher implements EventPublisher over a Kafka producer.
type KafkaEventPublisher struct {
	producer *kafka.Producer
}

// NewKafkaEventPublisher dials the configured Kafka brokers.
func NewKafkaEventPublisher(config *kafka.Config) (*KafkaEventPublisher, error) {
	producer, err := kafka.NewProducer(config)
	if err != nil {
		return nil, err
	}
	return &KafkaEventPublisher{producer: producer}, nil
}

// PublishDepositCompleted keys the Kafka message on a deterministic
// idempotency key (not transaction_id) so that a retried request that
// produced the same logical deposit twice collapses to one message for
// consumers that dedup on key.
func (p *KafkaEventPublisher) PublishDepositCompleted(event DepositCompletedEvent) error {
	event.IdempotencyKey = idempotency.GenerateKey("DEPOSIT", event.AccountID, event.Amount)
	return p.producer.PublishEvent(kafka.TopicWalletDeposit, event.IdempotencyKey, event)
}

func (p *KafkaEventPublisher) PublishWithdrawalCompleted(event WithdrawalCompletedEvent) error {
	event.IdempotencyKey = idempotency.GenerateKey("WITHDRAW", event.AccountID, event.Amount)
	return p.producer.PublishEvent(kafka.TopicWalletWithdraw, event.IdempotencyKey, event)
}

func (p *KafkaEventPublisher) PublishTransactionRejected(event TransactionRejectedEvent) error {
	event.IdempotencyKey = idempotency.GenerateKey(event.Operation, event.AccountID, event.Amount)
	return p.producer.PublishEvent(kafka.TopicWalletRejected, event.IdempotencyKey, event)
}

func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}

func (p *KafkaEventPublisher) IsHealthy() bool {
	return p.producer.IsHealthy()
}

// NoOpEventPublisher is used whenever KAFKA_ENABLED is false, so the rest of
// the adapter never needs to branch on whether auditing is on.
type NoOpEventPublisher struct{}

func NewNoOpEventPublisher() *NoOpEventPublisher { return &NoOpEventPublisher{} }

func (p *NoOpEventPublisher) PublishDepositCompleted(DepositCompletedEvent) error      { return nil }
func (p *NoOpEventPublisher) PublishWithdrawalCompleted(WithdrawalCompletedEvent) error { return nil }
func (p *NoOpEventPublisher) PublishTransactionRejected(TransactionRejectedEvent) error { return nil }
func (p *NoOpEventPublisher) Close() error                                             { return nil }
func (p *NoOpEventPublisher) IsHealthy() bool                                          { return true }

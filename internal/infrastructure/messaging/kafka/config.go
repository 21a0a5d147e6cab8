package kafka

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// Config holds Kafka producer configuration for the audit event stream.
type Config struct {
	Brokers           []string
	ClientID          string
	EnableIdempotence bool
	CompressionType   string
	RequiredAcks      string
	MaxRetries        int
	RetryBackoff      time.Duration
}

// NewConfigFromEnv builds a Config from the environment. It is only
// consulted when KAFKA_ENABLED is true (internal/config.KafkaConfig).
func NewConfigFromEnv() *Config {
	brokersStr := getEnv("KAFKA_BROKERS", "localhost:9092")

	return &Config{
		Brokers:           strings.Split(brokersStr, ","),
		ClientID:          getEnv("KAFKA_CLIENT_ID", "ftwallet"),
		EnableIdempotence: getEnvBool("KAFKA_ENABLE_IDEMPOTENCE", false),
		CompressionType:   getEnv("KAFKA_COMPRESSION_TYPE", "snappy"),
		RequiredAcks:      getEnv("KAFKA_REQUIRED_ACKS", "all"),
		MaxRetries:        getEnvInt("KAFKA_MAX_RETRIES", 5),
		RetryBackoff:      getEnvDuration("KAFKA_RETRY_BACKOFF", 100*time.Millisecond),
	}
}

// ToSaramaConfig converts to the sarama.Config the producer actually dials
// with.
func (c *Config) ToSaramaConfig() (*sarama.Config, error) {
	config := sarama.NewConfig()

	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.Idempotent = c.EnableIdempotence
	config.Producer.Retry.Max = c.MaxRetries
	config.Producer.Retry.Backoff = c.RetryBackoff

	if c.EnableIdempotence {
		config.Net.MaxOpenRequests = 1
	} else {
		config.Net.MaxOpenRequests = 5
	}

	switch c.RequiredAcks {
	case "all", "-1":
		config.Producer.RequiredAcks = sarama.WaitForAll
	case "1":
		config.Producer.RequiredAcks = sarama.WaitForLocal
	case "0":
		config.Producer.RequiredAcks = sarama.NoResponse
	default:
		return nil, fmt.Errorf("invalid required acks value: %s", c.RequiredAcks)
	}

	switch c.CompressionType {
	case "none":
		config.Producer.Compression = sarama.CompressionNone
	case "gzip":
		config.Producer.Compression = sarama.CompressionGZIP
	case "snappy":
		config.Producer.Compression = sarama.CompressionSnappy
	case "lz4":
		config.Producer.Compression = sarama.CompressionLZ4
	case "zstd":
		config.Producer.Compression = sarama.CompressionZSTD
	default:
		return nil, fmt.Errorf("invalid compression type: %s", c.CompressionType)
	}

	config.ClientID = c.ClientID
	config.Version = sarama.V3_0_0_0

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

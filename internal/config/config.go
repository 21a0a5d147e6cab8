package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every environment-tunable setting for both the primary and
// the backup process. Which fields matter depends on Replica.Role.
type Config struct {
	Environment string

	Server  ServerConfig
	GRPC    GRPCConfig
	Replica ReplicaConfig

	RateLimit RateLimitConfig
	CORS      CORSConfig
	Logging   LoggingConfig
	Kafka     KafkaConfig
	Audit     AuditConfig
}

type ServerConfig struct {
	Port string
	Host string
}

// GRPCConfig addresses both replicas: the primary dials PeerHost:PeerPort
// to reach the backup, and the backup listens on ListenPort for the primary
// to reach it.
type GRPCConfig struct {
	ListenPort    string
	PeerHost      string
	PeerPort      string
	DialTimeout   time.Duration
	CallTimeout   time.Duration
	ProbeInterval time.Duration
}

// ReplicaConfig fixes which role this process plays and where it keeps its
// write-ahead log.
type ReplicaConfig struct {
	Role            string // "primary" or "backup"
	DataDir         string
	WalletFile      string
	TransactionFile string
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Window            time.Duration
}

type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

type KafkaConfig struct {
	Enabled bool
}

type AuditConfig struct {
	Enabled bool
}

// LoadPrimary loads configuration for the primary replica: the peer is the
// backup, which the primary dials. GRPC.ListenPort is set from
// PRIMARY_GRPC_PORT, but the primary bootstrap starts no gRPC server.
func LoadPrimary() *Config {
	cfg := load("primary")
	cfg.GRPC.ListenPort = getEnv("PRIMARY_GRPC_PORT", "50051")
	cfg.GRPC.PeerPort = getEnv("BACKUP_GRPC_PORT", "50052")
	cfg.GRPC.PeerHost = getEnv("BACKUP_GRPC_HOST", "localhost")
	cfg.Replica.WalletFile = getEnv("PRIMARY_WALLET_FILE", "primary_wallets.json")
	cfg.Replica.TransactionFile = getEnv("PRIMARY_TRANSACTION_FILE", "primary_transactions.json")
	return cfg
}

// LoadBackup loads configuration for the backup replica: it listens on the
// backup gRPC port. GRPC.PeerHost/PeerPort are set to the primary's
// address, but the backup bootstrap never dials them.
func LoadBackup() *Config {
	cfg := load("backup")
	cfg.GRPC.ListenPort = getEnv("BACKUP_GRPC_PORT", "50052")
	cfg.GRPC.PeerPort = getEnv("PRIMARY_GRPC_PORT", "50051")
	cfg.GRPC.PeerHost = getEnv("PRIMARY_GRPC_HOST", "localhost")
	cfg.Replica.WalletFile = getEnv("BACKUP_WALLET_FILE", "backup_wallets.json")
	cfg.Replica.TransactionFile = getEnv("BACKUP_TRANSACTION_FILE", "backup_transactions.json")
	return cfg
}

func load(role string) *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		GRPC: GRPCConfig{
			DialTimeout:   getEnvAsDuration("GRPC_DIAL_TIMEOUT", 5*time.Second),
			CallTimeout:   getEnvAsDuration("GRPC_CALL_TIMEOUT", 5*time.Second),
			ProbeInterval: getEnvAsDuration("FAILOVER_PROBE_INTERVAL", 5*time.Second),
		},
		Replica: ReplicaConfig{
			Role:    role,
			DataDir: getEnv("DATA_DIR", "."),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 100),
			Window:            time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins:     getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			AllowMethods:     getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowHeaders:     getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization", "Accept", "X-Requested-With"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvAsBool("KAFKA_ENABLED", false),
		},
		Audit: AuditConfig{
			Enabled: getEnvAsBool("AUDIT_LOG_ENABLED", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsSlice(name string, defaultVal []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return defaultVal
	}
	return strings.Split(valStr, ",")
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if valStr == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(valStr); err == nil {
		return d
	}
	return defaultVal
}

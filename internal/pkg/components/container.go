// Package components wires every other package into one bootstrap object,
// grounded on the teacher's own internal/pkg/components/components.go:
// config → logger → ledger engine → (primary only) replication client +
// failover monitor → replicated writer → HTTP router → HTTP server.
package components

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ftwallet/internal/api/routes"
	"ftwallet/internal/config"
	"ftwallet/internal/domain/models"
	"ftwallet/internal/failover"
	"ftwallet/internal/infrastructure/audit"
	"ftwallet/internal/infrastructure/messaging"
	"ftwallet/internal/infrastructure/messaging/kafka"
	"ftwallet/internal/ledger"
	"ftwallet/internal/pkg/logging"
	"ftwallet/internal/replication"

	"github.com/gin-gonic/gin"
)

// Container is the primary replica's bootstrap object: the Engine, the
// Writer, BackupClient and Monitor of the replication protocol, and the
// HTTP adapter. The backup replica uses BackupContainer (backup.go) instead.
type Container struct {
	Config *config.Config

	Engine *ledger.Engine

	BackupClient *replication.Client
	Failover     *replication.FailoverFlag
	Monitor      *failover.Monitor
	Writer       *replication.Writer

	EventPublisherImpl messaging.EventPublisher
	AuditLog           *audit.PostgresLog

	Router *gin.Engine
	Server *http.Server
}

var (
	instance     *Container
	instanceOnce sync.Once
	instanceErr  error
)

// GetPrimaryInstance returns the singleton primary-role container,
// constructing it (and dialing the backup) on first call.
func GetPrimaryInstance() (*Container, error) {
	instanceOnce.Do(func() {
		instance, instanceErr = newPrimaryContainer()
	})
	return instance, instanceErr
}

func newPrimaryContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.LoadPrimary()
	logging.Init(c.Config)
	logging.Info("logger initialized", map[string]interface{}{"level": c.Config.Logging.Level})

	if err := c.initEngine(); err != nil {
		return nil, fmt.Errorf("components: failed to initialize ledger engine: %w", err)
	}
	if err := c.initReplication(); err != nil {
		return nil, fmt.Errorf("components: failed to initialize replication: %w", err)
	}
	if err := c.initEventPublisher(); err != nil {
		return nil, fmt.Errorf("components: failed to initialize event publisher: %w", err)
	}
	if err := c.initAuditLog(); err != nil {
		return nil, fmt.Errorf("components: failed to initialize audit log: %w", err)
	}
	if err := c.initServer(); err != nil {
		return nil, fmt.Errorf("components: failed to initialize http server: %w", err)
	}

	logging.Info("all primary components initialized", nil)
	return c, nil
}

func (c *Container) initEngine() error {
	engine, err := ledger.New(c.Config.Replica.DataDir, c.Config.Replica.WalletFile, c.Config.Replica.TransactionFile)
	if err != nil {
		return err
	}
	c.Engine = engine
	return nil
}

func (c *Container) initReplication() error {
	peerTarget := c.Config.GRPC.PeerHost + ":" + c.Config.GRPC.PeerPort
	client, err := replication.Dial(peerTarget, c.Config.GRPC.DialTimeout, c.Config.GRPC.CallTimeout)
	if err != nil {
		return fmt.Errorf("failed to dial backup at %s: %w", peerTarget, err)
	}
	c.BackupClient = client
	c.Failover = &replication.FailoverFlag{}
	c.Writer = replication.NewWriter(c.Engine, c.BackupClient, c.Failover)

	c.Monitor = failover.NewMonitor(c.BackupClient, c.Failover, c.Config.GRPC.ProbeInterval, c.Config.GRPC.CallTimeout)
	go c.Monitor.Run()

	return nil
}

func (c *Container) initEventPublisher() error {
	if !c.Config.Kafka.Enabled {
		logging.Info("kafka disabled, using no-op event publisher", nil)
		c.EventPublisherImpl = messaging.NewNoOpEventPublisher()
		return nil
	}

	publisher, err := messaging.NewKafkaEventPublisher(kafka.NewConfigFromEnv())
	if err != nil {
		logging.Warn("failed to initialize kafka, falling back to no-op publisher", map[string]interface{}{"error": err.Error()})
		c.EventPublisherImpl = messaging.NewNoOpEventPublisher()
		return nil
	}
	c.EventPublisherImpl = publisher
	return nil
}

func (c *Container) initAuditLog() error {
	if !c.Config.Audit.Enabled {
		return nil
	}

	auditLog, err := audit.NewPostgresLog(context.Background(), audit.NewConfigFromEnv(), c.Config.Replica.Role)
	if err != nil {
		logging.Warn("failed to initialize audit log, continuing without it", map[string]interface{}{"error": err.Error()})
		return nil
	}
	c.AuditLog = auditLog
	return nil
}

func (c *Container) initServer() error {
	if c.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	c.Router = gin.New()
	c.Router.Use(gin.Recovery())

	routes.RegisterRoutes(c.Router, c.Config, c)

	c.Server = &http.Server{
		Addr:           c.Config.Server.Host + ":" + c.Config.Server.Port,
		Handler:        c.Router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	return nil
}

// Start serves HTTP until a SIGINT/SIGTERM triggers graceful shutdown.
func (c *Container) Start() error {
	logging.Info("starting http server", map[string]interface{}{"address": c.Server.Addr})

	go func() {
		if err := c.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("server failed to start", err, nil)
			os.Exit(1)
		}
	}()

	c.waitForShutdown()
	return nil
}

func (c *Container) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Shutdown(ctx); err != nil {
		logging.Error("forced shutdown", err, nil)
	}
	logging.Info("shutdown complete", nil)
}

// Shutdown drains the HTTP server and releases every downstream connection.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.Monitor != nil {
		c.Monitor.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}
	if c.BackupClient != nil {
		if err := c.BackupClient.Close(); err != nil {
			logging.Error("failed to close backup client", err, nil)
		}
	}
	if c.EventPublisherImpl != nil {
		if err := c.EventPublisherImpl.Close(); err != nil {
			logging.Error("failed to close event publisher", err, nil)
		}
	}
	if c.AuditLog != nil {
		c.AuditLog.Close()
	}
	return nil
}

// Deposit implements handlers.HandlerDependencies via the Replicated Writer.
func (c *Container) Deposit(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	return c.Writer.Deposit(accountID, amount, transactionID)
}

// Withdraw implements handlers.HandlerDependencies via the Replicated Writer.
func (c *Container) Withdraw(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	return c.Writer.Withdraw(accountID, amount, transactionID)
}

// GetBalance always reads the local engine directly (§4.D).
func (c *Container) GetBalance(accountID string) (bool, float64, string) {
	return c.Engine.GetBalance(accountID)
}

// InFailoverMode reports the shared failover flag's current state.
func (c *Container) InFailoverMode() bool {
	return c.Failover.InFailover()
}

// EventPublisher returns the configured audit-event publisher.
func (c *Container) EventPublisher() messaging.EventPublisher {
	return c.EventPublisherImpl
}

// RecordAudit mirrors a committed Transaction Record into the optional
// Postgres audit sink. A no-op whenever AUDIT_LOG_ENABLED is false or the
// sink failed to connect at startup — losing this projection never
// compromises the WAL, so failures here are logged and swallowed.
func (c *Container) RecordAudit(rec *models.TransactionRecord) {
	if c.AuditLog == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.AuditLog.Record(ctx, rec); err != nil {
		logging.Error("failed to record audit entry", err, map[string]interface{}{"transaction_id": rec.TransactionID})
	}
}

// Replica reports this process's role ("primary" or "backup").
func (c *Container) Replica() string {
	return c.Config.Replica.Role
}

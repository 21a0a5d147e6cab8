package components

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ftwallet/internal/config"
	"ftwallet/internal/ledger"
	"ftwallet/internal/ledger/backupserver"
	"ftwallet/internal/pkg/logging"

	"google.golang.org/grpc"
)

// BackupContainer is the backup replica's bootstrap object. It has no HTTP
// adapter, no Replicated Writer and no Failover Monitor of its own — it is
// a pure Ledger Engine exposed over gRPC for the primary to call into.
type BackupContainer struct {
	Config     *config.Config
	Engine     *ledger.Engine
	GRPCServer *grpc.Server
	listener   net.Listener
}

// NewBackupContainer loads backup configuration, opens the local Ledger
// Engine and registers the Backup RPC Server on a fresh grpc.Server.
func NewBackupContainer() (*BackupContainer, error) {
	c := &BackupContainer{}

	c.Config = config.LoadBackup()
	logging.Init(c.Config)
	logging.Info("logger initialized", map[string]interface{}{"level": c.Config.Logging.Level})

	engine, err := ledger.New(c.Config.Replica.DataDir, c.Config.Replica.WalletFile, c.Config.Replica.TransactionFile)
	if err != nil {
		return nil, fmt.Errorf("components: failed to initialize ledger engine: %w", err)
	}
	c.Engine = engine

	listener, err := net.Listen("tcp", ":"+c.Config.GRPC.ListenPort)
	if err != nil {
		return nil, fmt.Errorf("components: failed to listen on gRPC port %s: %w", c.Config.GRPC.ListenPort, err)
	}
	c.listener = listener

	c.GRPCServer = grpc.NewServer()
	backupserver.New(c.Engine, c.Config.Replica.Role).Register(c.GRPCServer)

	logging.Info("all backup components initialized", nil)
	return c, nil
}

// Start serves gRPC until a SIGINT/SIGTERM triggers graceful shutdown.
func (c *BackupContainer) Start() error {
	logging.Info("starting grpc server", map[string]interface{}{"address": c.listener.Addr().String()})

	go func() {
		if err := c.GRPCServer.Serve(c.listener); err != nil {
			logging.Error("grpc server failed to start", err, nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("shutting down", nil)
	c.Shutdown(context.Background())
	logging.Info("shutdown complete", nil)
	return nil
}

// Shutdown drains in-flight RPCs before returning, bounded by a 30 second
// grace period to match the primary's HTTP shutdown timeout.
func (c *BackupContainer) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		c.GRPCServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		c.GRPCServer.Stop()
	}
}

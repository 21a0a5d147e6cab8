// Package backupserver implements the Backup RPC Server (component B): a
// thin gRPC adapter that exposes a ledger.Capability over the wire so the
// Replicated Writer on the other replica can apply the same mutation twice.
package backupserver

import (
	"context"

	"ftwallet/internal/ledger"
	"ftwallet/internal/ledger/walletrpc"
	"ftwallet/internal/pkg/logging"

	"google.golang.org/grpc"
)

// Server adapts a ledger.Capability to walletrpc.WalletBackupServer. It
// holds no state of its own — every call is forwarded straight through to
// the underlying engine, which does its own serialization and WAL writes.
type Server struct {
	walletrpc.UnimplementedWalletBackupServer

	capability ledger.Capability
	role       string
}

// New wraps capability (normally a *ledger.Engine) for RPC exposure. role is
// reported back on Health checks ("primary" or "backup") purely for
// operator visibility.
func New(capability ledger.Capability, role string) *Server {
	return &Server{capability: capability, role: role}
}

// Register attaches the server to a grpc.Server under the WalletBackup
// service descriptor.
func (s *Server) Register(grpcServer *grpc.Server) {
	walletrpc.RegisterWalletBackupServer(grpcServer, s)
}

func (s *Server) Deposit(ctx context.Context, req *walletrpc.DepositRequest) (*walletrpc.TransactionResponse, error) {
	success, message, balance := s.capability.Deposit(req.AccountID, req.Amount, req.TransactionID)
	logging.Debug("backup rpc: deposit", map[string]interface{}{
		"transaction_id": req.TransactionID,
		"account_id":     req.AccountID,
		"success":        success,
	})
	return &walletrpc.TransactionResponse{Success: success, Message: message, NewBalance: balance, TransactionID: req.TransactionID}, nil
}

func (s *Server) Withdraw(ctx context.Context, req *walletrpc.WithdrawRequest) (*walletrpc.TransactionResponse, error) {
	success, message, balance := s.capability.Withdraw(req.AccountID, req.Amount, req.TransactionID)
	logging.Debug("backup rpc: withdraw", map[string]interface{}{
		"transaction_id": req.TransactionID,
		"account_id":     req.AccountID,
		"success":        success,
	})
	return &walletrpc.TransactionResponse{Success: success, Message: message, NewBalance: balance, TransactionID: req.TransactionID}, nil
}

func (s *Server) GetBalance(ctx context.Context, req *walletrpc.GetBalanceRequest) (*walletrpc.GetBalanceResponse, error) {
	success, balance, message := s.capability.GetBalance(req.AccountID)
	return &walletrpc.GetBalanceResponse{Success: success, Balance: balance, Message: message}, nil
}

func (s *Server) Health(ctx context.Context, req *walletrpc.HealthRequest) (*walletrpc.HealthResponse, error) {
	return &walletrpc.HealthResponse{Role: s.role}, nil
}

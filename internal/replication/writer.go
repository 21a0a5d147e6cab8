package replication

import (
	"fmt"
	"sync/atomic"

	"ftwallet/internal/ledger"
	"ftwallet/internal/metrics"
	"ftwallet/internal/pkg/logging"
)

// FailoverFlag is the single-writer/many-reader failover_mode switch: the
// Failover Monitor is the only writer, the Writer below is the reader
// consulted on every mutating request.
type FailoverFlag struct {
	inFailover atomic.Bool
}

// Set is called by the Failover Monitor whenever the peer's reachability
// changes.
func (f *FailoverFlag) Set(inFailover bool) {
	f.inFailover.Store(inFailover)
}

// InFailover reports the current mode.
func (f *FailoverFlag) InFailover() bool {
	return f.inFailover.Load()
}

// BackupCaller is the subset of *Client the Replicated Writer depends on,
// extracted so tests can substitute a fake peer without a real gRPC dial.
type BackupCaller interface {
	Deposit(accountID string, amount float64, transactionID string) (bool, string, float64, error)
	Withdraw(accountID string, amount float64, transactionID string) (bool, string, float64, error)
}

// Writer implements the Replicated Writer (component D): the primary-side
// orchestrator of the backup-first write protocol. Reads never go through
// here — the API Adapter calls the primary's Engine directly for GetBalance.
type Writer struct {
	primary  ledger.Capability
	backup   BackupCaller
	failover *FailoverFlag
}

// NewWriter composes the primary's local engine with a Replication Client to
// the backup and a shared failover flag.
func NewWriter(primary ledger.Capability, backup BackupCaller, failover *FailoverFlag) *Writer {
	return &Writer{primary: primary, backup: backup, failover: failover}
}

// Deposit applies backup-first, then primary, unless failover_mode is set,
// in which case the backup call is skipped entirely (I6 no longer applies
// while degraded — this is the documented, accepted tradeoff of §4.D).
func (w *Writer) Deposit(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	if w.failover.InFailover() {
		success, message, balance := w.primary.Deposit(accountID, amount, transactionID)
		return success, message, balance, nil
	}

	backupSuccess, backupMessage, _, err := w.backup.Deposit(accountID, amount, transactionID)
	if err != nil {
		metrics.RecordReplicationFailure("deposit", "unreachable")
		logging.Warn("replicated writer: backup unreachable for deposit, primary left unmutated", map[string]interface{}{
			"transaction_id": transactionID,
			"account_id":     accountID,
			"error":          err.Error(),
		})
		return false, fmt.Sprintf("Backup error: %s", err), 0, nil
	}
	if !backupSuccess {
		metrics.RecordReplicationFailure("deposit", "rejected")
		logging.Warn("replicated writer: backup rejected deposit, primary left unmutated", map[string]interface{}{
			"transaction_id": transactionID,
			"account_id":     accountID,
			"message":        backupMessage,
		})
		return false, fmt.Sprintf("Backup error: %s", backupMessage), 0, nil
	}

	success, message, balance := w.primary.Deposit(accountID, amount, transactionID)
	return success, message, balance, nil
}

// Withdraw mirrors Deposit's backup-first protocol.
func (w *Writer) Withdraw(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	if w.failover.InFailover() {
		success, message, balance := w.primary.Withdraw(accountID, amount, transactionID)
		return success, message, balance, nil
	}

	backupSuccess, backupMessage, _, err := w.backup.Withdraw(accountID, amount, transactionID)
	if err != nil {
		metrics.RecordReplicationFailure("withdraw", "unreachable")
		logging.Warn("replicated writer: backup unreachable for withdraw, primary left unmutated", map[string]interface{}{
			"transaction_id": transactionID,
			"account_id":     accountID,
			"error":          err.Error(),
		})
		return false, fmt.Sprintf("Backup error: %s", err), 0, nil
	}
	if !backupSuccess {
		metrics.RecordReplicationFailure("withdraw", "rejected")
		logging.Warn("replicated writer: backup rejected withdraw, primary left unmutated", map[string]interface{}{
			"transaction_id": transactionID,
			"account_id":     accountID,
			"message":        backupMessage,
		})
		return false, fmt.Sprintf("Backup error: %s", backupMessage), 0, nil
	}

	success, message, balance := w.primary.Withdraw(accountID, amount, transactionID)
	return success, message, balance, nil
}

// GetBalance always reads the primary's own Ledger Engine directly; the
// backup-first protocol only governs mutations.
func (w *Writer) GetBalance(accountID string) (bool, float64, string) {
	return w.primary.GetBalance(accountID)
}

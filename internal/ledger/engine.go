// Package ledger implements the Ledger Engine (component A): an in-memory
// account map backed by a write-ahead Transaction Log, so duplicate
// requests replay their cached outcome and a crash mid-mutation leaves
// nothing ambiguous to recover.
package ledger

import (
	"fmt"
	"path/filepath"
	"sync"

	"ftwallet/internal/domain/models"
	"ftwallet/internal/pkg/logging"
)

// Engine is the reference implementation of Capability. It is not aware of
// replication — the Replicated Writer composes two of these (or one local
// Engine and one remote stub) into the primary/backup protocol.
type Engine struct {
	mu sync.Mutex

	wallets      map[string]float64
	transactions map[string]*models.TransactionRecord

	walletPath      string
	transactionPath string

	// poisoned is set once a Transaction Log write fails. Per the spec's
	// internal failure policy, losing the ability to record idempotency
	// is fatal: the engine must refuse further writes until restart.
	poisoned bool
}

// New opens (or creates) an Engine backed by the two named files. dataDir
// is joined to walletFile/transactionFile.
func New(dataDir, walletFile, transactionFile string) (*Engine, error) {
	e := &Engine{
		walletPath:      filepath.Join(dataDir, walletFile),
		transactionPath: filepath.Join(dataDir, transactionFile),
	}

	wallets, err := loadWallets(e.walletPath)
	if err != nil {
		return nil, err
	}
	e.wallets = wallets

	transactions, err := loadTransactions(e.transactionPath)
	if err != nil {
		return nil, err
	}
	e.transactions = transactions

	recovered := e.RecoverPendingTransactions()
	if recovered > 0 {
		logging.Warn("recovered pending transactions at startup", map[string]interface{}{
			"count": recovered,
			"file":  e.transactionPath,
		})
	}

	return e, nil
}

// cachedResult returns the previously recorded outcome for transactionID,
// and whether one exists. Only a COMMITTED record counts as cached. A record
// found in PENDING state is treated as "not yet cached" rather than
// authoritative (§9 open question) — under normal operation this is
// unreachable because recovery always runs before any request is served,
// but a concurrent in-process retry racing an in-flight PENDING write must
// not replay a half-written record. A ROLLED_BACK record is not cached
// either, so a retry of a discarded transaction runs again (I5).
func (e *Engine) cachedResult(transactionID string) (models.Result, bool) {
	rec, ok := e.transactions[transactionID]
	if !ok || rec.Status != models.StatusCommitted {
		return models.Result{}, false
	}
	return models.Result{Success: rec.Success, Message: rec.Message, Value: rec.NewBalance}, true
}

func (e *Engine) writePending(transactionID string, op models.OperationType, accountID string, amount float64) error {
	e.transactions[transactionID] = &models.TransactionRecord{
		TransactionID: transactionID,
		Status:        models.StatusPending,
		Operation:     op,
		AccountID:     accountID,
		Amount:        amount,
	}
	if err := e.persistTransactions(); err != nil {
		return err
	}
	logging.Debug("WAL: recorded PENDING transaction", map[string]interface{}{"transaction_id": transactionID})
	return nil
}

func (e *Engine) commit(transactionID string, success bool, message string, newBalance float64) error {
	rec, ok := e.transactions[transactionID]
	if !ok {
		rec = &models.TransactionRecord{TransactionID: transactionID}
		e.transactions[transactionID] = rec
	}
	rec.Status = models.StatusCommitted
	rec.Success = success
	rec.Message = message
	rec.NewBalance = newBalance

	if err := e.persistTransactions(); err != nil {
		return err
	}
	logging.Debug("WAL: committed transaction", map[string]interface{}{"transaction_id": transactionID})
	return nil
}

func (e *Engine) rollback(transactionID string) {
	if rec, ok := e.transactions[transactionID]; ok {
		rec.Status = models.StatusRolledBack
		if err := e.persistTransactions(); err != nil {
			logging.Error("failed to persist rollback", err, map[string]interface{}{"transaction_id": transactionID})
		}
		logging.Warn("WAL: rolled back transaction", map[string]interface{}{"transaction_id": transactionID})
	}
}

func (e *Engine) persistTransactions() error {
	if e.poisoned {
		return fmt.Errorf("ledger engine is poisoned: a previous transaction log write failed")
	}
	if err := saveTransactions(e.transactionPath, e.transactions); err != nil {
		e.poisoned = true
		return err
	}
	return nil
}

// Deposit implements §4.A. Duplicate transaction_id short-circuits to the
// cached result (I2); non-positive amounts are a synthesized, directly
// committed rejection (I4); otherwise PENDING → mutate → persist →
// COMMITTED, rolling back on any failure in between.
func (e *Engine) Deposit(accountID string, amount float64, transactionID string) (bool, string, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.cachedResult(transactionID); ok {
		return cached.Success, cached.Message, cached.Value
	}

	if amount <= 0 {
		result := models.Result{Success: false, Message: "Amount must be positive", Value: 0}
		if err := e.commit(transactionID, result.Success, result.Message, result.Value); err != nil {
			logging.Error("failed to commit validation rejection", err, nil)
		}
		return result.Success, result.Message, result.Value
	}

	if err := e.writePending(transactionID, models.OperationDeposit, accountID, amount); err != nil {
		logging.Error("deposit failed to write WAL", err, map[string]interface{}{"transaction_id": transactionID})
		return false, fmt.Sprintf("Deposit failed: %v", err), 0
	}

	if _, ok := e.wallets[accountID]; !ok {
		e.wallets[accountID] = 0
	}
	e.wallets[accountID] += amount
	newBalance := e.wallets[accountID]

	if err := saveWallets(e.walletPath, e.wallets); err != nil {
		e.wallets[accountID] -= amount // undo the in-memory mutation before rolling back
		e.rollback(transactionID)
		return false, fmt.Sprintf("Deposit failed: %v", err), 0
	}

	message := fmt.Sprintf("Deposited %v", amount)
	if err := e.commit(transactionID, true, message, newBalance); err != nil {
		logging.Error("deposit committed to wallets but failed to commit WAL", err, map[string]interface{}{"transaction_id": transactionID})
		return false, fmt.Sprintf("Deposit failed: %v", err), 0
	}

	logging.Info("deposit successful", map[string]interface{}{
		"transaction_id": transactionID,
		"account_id":     accountID,
		"amount":         amount,
	})
	return true, message, newBalance
}

// Withdraw implements §4.A's one deviation from Deposit: the
// insufficient-funds check runs before the PENDING write, since it is a
// pure rejection that never touches the balance, and is itself committed
// directly so a retried rejection stays idempotent (P5).
func (e *Engine) Withdraw(accountID string, amount float64, transactionID string) (bool, string, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.cachedResult(transactionID); ok {
		return cached.Success, cached.Message, cached.Value
	}

	if amount <= 0 {
		result := models.Result{Success: false, Message: "Amount must be positive", Value: 0}
		if err := e.commit(transactionID, result.Success, result.Message, result.Value); err != nil {
			logging.Error("failed to commit validation rejection", err, nil)
		}
		return result.Success, result.Message, result.Value
	}

	if _, ok := e.wallets[accountID]; !ok {
		e.wallets[accountID] = 0
	}
	current := e.wallets[accountID]
	if current < amount {
		message := "Insufficient balance"
		if err := e.commit(transactionID, false, message, current); err != nil {
			logging.Error("failed to commit insufficient-funds rejection", err, nil)
		}
		return false, message, current
	}

	if err := e.writePending(transactionID, models.OperationWithdraw, accountID, amount); err != nil {
		logging.Error("withdraw failed to write WAL", err, map[string]interface{}{"transaction_id": transactionID})
		return false, fmt.Sprintf("Withdraw failed: %v", err), 0
	}

	e.wallets[accountID] -= amount
	newBalance := e.wallets[accountID]

	if err := saveWallets(e.walletPath, e.wallets); err != nil {
		e.wallets[accountID] += amount
		e.rollback(transactionID)
		return false, fmt.Sprintf("Withdraw failed: %v", err), 0
	}

	message := fmt.Sprintf("Withdrew %v", amount)
	if err := e.commit(transactionID, true, message, newBalance); err != nil {
		logging.Error("withdraw committed to wallets but failed to commit WAL", err, map[string]interface{}{"transaction_id": transactionID})
		return false, fmt.Sprintf("Withdraw failed: %v", err), 0
	}

	logging.Info("withdraw successful", map[string]interface{}{
		"transaction_id": transactionID,
		"account_id":     accountID,
		"amount":         amount,
	})
	return true, message, newBalance
}

// GetBalance is read-only: an unknown account is created at zero and
// persisted, but never logged to the Transaction Log.
func (e *Engine) GetBalance(accountID string) (bool, float64, string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	balance, ok := e.wallets[accountID]
	if !ok {
		e.wallets[accountID] = 0
		balance = 0
		if err := saveWallets(e.walletPath, e.wallets); err != nil {
			logging.Error("failed to persist newly created account", err, map[string]interface{}{"account_id": accountID})
		}
	}

	return true, balance, "Balance retrieved"
}

// RecoverPendingTransactions scans the Transaction Log for records left in
// PENDING state and rolls each back, so a crash mid-mutation can never be
// replayed (I5). It is called once at startup before the engine serves any
// request.
func (e *Engine) RecoverPendingTransactions() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for id, rec := range e.transactions {
		if rec.Status == models.StatusPending {
			rec.Status = models.StatusRolledBack
			count++
			logging.Warn("recovering pending transaction", map[string]interface{}{"transaction_id": id})
		}
	}

	if count > 0 {
		if err := saveTransactions(e.transactionPath, e.transactions); err != nil {
			logging.Error("failed to persist recovery rollback", err, nil)
		}
	}

	return count
}

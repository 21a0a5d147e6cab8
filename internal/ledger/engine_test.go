package ledger_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"ftwallet/internal/domain/models"
	"ftwallet/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*ledger.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	e, err := ledger.New(dir, "wallets.json", "transactions.json")
	require.NoError(t, err)
	return e, dir
}

func recordStatus(t *testing.T, dir, transactionID string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "transactions.json"))
	require.NoError(t, err)

	records := make(map[string]*models.TransactionRecord)
	require.NoError(t, json.Unmarshal(data, &records))

	rec, ok := records[transactionID]
	require.True(t, ok, "transaction %s not found in persisted log", transactionID)
	return string(rec.Status)
}

func TestDeposit_Simple(t *testing.T) {
	e, _ := newTestEngine(t)

	success, message, balance := e.Deposit("alice", 100, "t1")
	assert.True(t, success)
	assert.Equal(t, "Deposited 100", message)
	assert.Equal(t, float64(100), balance)
}

func TestDeposit_IdempotentReplay(t *testing.T) {
	e, _ := newTestEngine(t)

	success1, message1, balance1 := e.Deposit("alice", 100, "t1")
	success2, message2, balance2 := e.Deposit("alice", 100, "t1")

	assert.Equal(t, success1, success2)
	assert.Equal(t, message1, message2)
	assert.Equal(t, balance1, balance2)

	_, balance, _ := e.GetBalance("alice")
	assert.Equal(t, float64(100), balance, "replaying a deposit must not apply it twice")
}

func TestDeposit_RejectsNonPositiveAmount(t *testing.T) {
	e, _ := newTestEngine(t)

	success, message, balance := e.Deposit("alice", -5, "t4")
	assert.False(t, success)
	assert.Equal(t, "Amount must be positive", message)
	assert.Equal(t, float64(0), balance)

	success2, message2, balance2 := e.Deposit("alice", -5, "t4")
	assert.Equal(t, success, success2)
	assert.Equal(t, message, message2)
	assert.Equal(t, balance, balance2)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	e, dir := newTestEngine(t)

	success, message, balance := e.Withdraw("bob", 50, "t2")
	assert.False(t, success)
	assert.Equal(t, "Insufficient balance", message)
	assert.Equal(t, float64(0), balance)

	assert.Equal(t, "COMMITTED", recordStatus(t, dir, "t2"))
}

func TestWithdraw_RejectionStaysCachedAfterLaterDeposit(t *testing.T) {
	e, _ := newTestEngine(t)

	success, message, balance := e.Withdraw("bob", 50, "t2")
	require.False(t, success)
	require.Equal(t, "Insufficient balance", message)
	require.Equal(t, float64(0), balance)

	_, _, _ = e.Deposit("bob", 200, "t3")

	success2, message2, balance2 := e.Withdraw("bob", 50, "t2")
	assert.False(t, success2)
	assert.Equal(t, "Insufficient balance", message2)
	assert.Equal(t, float64(0), balance2, "the cached rejection must win over the now-sufficient balance")
}

func TestGetBalance_CreatesUnknownAccountAtZero(t *testing.T) {
	e, _ := newTestEngine(t)

	success, balance, message := e.GetBalance("new-account")
	assert.True(t, success)
	assert.Equal(t, float64(0), balance)
	assert.Equal(t, "Balance retrieved", message)
}

func TestRecoverPendingTransactions_DiscardsPendingOnRestart(t *testing.T) {
	dir := t.TempDir()
	walletPath := filepath.Join(dir, "wallets.json")
	txnPath := filepath.Join(dir, "transactions.json")

	require.NoError(t, os.WriteFile(walletPath, []byte(`{"alice": 0}`), 0o644))
	require.NoError(t, os.WriteFile(txnPath, []byte(`{
		"t5": {"status": "PENDING", "operation": "DEPOSIT", "account_id": "alice", "amount": 10, "success": false, "message": "", "new_balance": 0}
	}`), 0o644))

	e, err := ledger.New(dir, "wallets.json", "transactions.json")
	require.NoError(t, err)

	assert.Equal(t, "ROLLED_BACK", recordStatus(t, dir, "t5"))

	_, balance, _ := e.GetBalance("alice")
	assert.Equal(t, float64(0), balance, "a discarded PENDING transaction must not have mutated the balance")

	// The transaction_id is free to run again because recovery discarded
	// the PENDING record rather than caching it.
	success, _, balance2 := e.Deposit("alice", 10, "t5")
	assert.True(t, success)
	assert.Equal(t, float64(10), balance2)
}

func TestConcurrentDeposits_SerializeThroughTheEngineMutex(t *testing.T) {
	e, _ := newTestEngine(t)

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, _, _ = e.Deposit("alice", 1, fmt.Sprintf("concurrent-%d", i))
		}(i)
	}
	wg.Wait()

	_, balance, _ := e.GetBalance("alice")
	assert.Equal(t, float64(n), balance)
}

func TestWithdraw_NeverGoesNegativeUnderConcurrency(t *testing.T) {
	e, _ := newTestEngine(t)
	_, _, _ = e.Deposit("alice", 50, "seed")

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, _, _ = e.Withdraw("alice", 1, fmt.Sprintf("withdraw-%d", i))
		}(i)
	}
	wg.Wait()

	_, balance, _ := e.GetBalance("alice")
	assert.GreaterOrEqual(t, balance, float64(0))
}

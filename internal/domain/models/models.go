// Package models holds the plain data types shared by the ledger engine,
// the gRPC wire layer, and the HTTP adapter.
package models

// TransactionStatus is the lifecycle state of a Transaction Record.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusCommitted  TransactionStatus = "COMMITTED"
	StatusRolledBack TransactionStatus = "ROLLED_BACK"
)

// OperationType distinguishes the two mutating ledger operations.
type OperationType string

const (
	OperationDeposit  OperationType = "DEPOSIT"
	OperationWithdraw OperationType = "WITHDRAW"
)

// TransactionRecord is the Transaction Log entry keyed by TransactionID.
type TransactionRecord struct {
	TransactionID string            `json:"-"`
	Status        TransactionStatus `json:"status"`
	Operation     OperationType     `json:"operation"`
	AccountID     string            `json:"account_id"`
	Amount        float64           `json:"amount"`
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	NewBalance    float64           `json:"new_balance"`
}

// Result is the triple every mutating and read-only ledger operation
// returns: (success, message, value). For GetBalance, Value is the balance;
// for Deposit/Withdraw, Value is the post-operation balance.
type Result struct {
	Success bool
	Message string
	Value   float64
}

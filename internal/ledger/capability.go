package ledger

// Capability is the fixed operation set the Ledger Engine exposes. The
// Backup RPC Server and the Replicated Writer both depend on it
// abstractly — neither cares whether the implementation behind it is the
// in-process *Engine or a remote stub reaching one over gRPC.
type Capability interface {
	Deposit(accountID string, amount float64, transactionID string) (success bool, message string, newBalance float64)
	Withdraw(accountID string, amount float64, transactionID string) (success bool, message string, newBalance float64)
	GetBalance(accountID string) (success bool, balance float64, message string)
}

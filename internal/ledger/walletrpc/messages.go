// Package walletrpc is the wire layer between replicas: plain JSON-tagged
// messages carried over a genuine gRPC transport, using a JSON codec in
// place of protobuf binary encoding. There is no .proto file in this
// repository to generate from, so the service descriptor, client and
// server stubs below are written by hand in the shape protoc-gen-go-grpc
// would have produced, wired to the codec in codec.go instead of the
// generated Marshal/Unmarshal methods protobuf messages normally carry.
package walletrpc

// DepositRequest is the wire shape of a Deposit call.
type DepositRequest struct {
	AccountID     string  `json:"account_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
}

// WithdrawRequest is the wire shape of a Withdraw call.
type WithdrawRequest struct {
	AccountID     string  `json:"account_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
}

// GetBalanceRequest is the wire shape of a GetBalance call.
type GetBalanceRequest struct {
	AccountID string `json:"account_id"`
}

// TransactionResponse is the wire shape returned by Deposit and Withdraw.
type TransactionResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	NewBalance    float64 `json:"new_balance"`
	TransactionID string  `json:"transaction_id"`
}

// GetBalanceResponse is the wire shape returned by GetBalance.
type GetBalanceResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
	Message string  `json:"message"`
}

// HealthRequest carries no data; the Failover Monitor only cares whether
// the call completes within its deadline.
type HealthRequest struct{}

// HealthResponse confirms the replica answered.
type HealthResponse struct {
	Role string `json:"role"`
}

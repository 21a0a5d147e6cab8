// Package replication implements the Replication Client (component C) and
// the Replicated Writer (component D): the primary's side of the
// backup-first write protocol, and the connection it is carried over.
package replication

import (
	"context"
	"fmt"
	"time"

	"ftwallet/internal/ledger/walletrpc"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps a single long-lived gRPC connection to a peer replica. It is
// dialed once at startup and reused for every call — the spec's backup-first
// protocol calls it on every mutating request, so a per-call dial would be
// both slow and a needless source of failure.
type Client struct {
	conn        *grpc.ClientConn
	rpc         walletrpc.WalletBackupClient
	callTimeout time.Duration
}

// Dial connects to the peer at target ("host:port") with dialTimeout bounding
// the connection attempt and callTimeout bounding every subsequent RPC.
func Dial(target string, dialTimeout, callTimeout time.Duration) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("replication: failed to create client for %s: %w", target, err)
	}

	// NewClient is lazy: force an initial connection attempt so
	// misconfiguration at startup surfaces immediately rather than on the
	// first real write.
	conn.Connect()
	for {
		state := conn.GetState()
		if state.String() == "READY" {
			break
		}
		if !conn.WaitForStateChange(ctx, state) {
			conn.Close()
			return nil, fmt.Errorf("replication: timed out connecting to %s: %w", target, ctx.Err())
		}
	}

	return &Client{
		conn:        conn,
		rpc:         walletrpc.NewWalletBackupClient(conn),
		callTimeout: callTimeout,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) withDeadline(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.callTimeout)
}

// Deposit forwards a deposit to the peer replica.
func (c *Client) Deposit(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	ctx, cancel := c.withDeadline(context.Background())
	defer cancel()

	resp, err := c.rpc.Deposit(ctx, &walletrpc.DepositRequest{
		AccountID: accountID, Amount: amount, TransactionID: transactionID,
	})
	if err != nil {
		return false, "", 0, fmt.Errorf("replication: deposit rpc failed: %w", err)
	}
	return resp.Success, resp.Message, resp.NewBalance, nil
}

// Withdraw forwards a withdrawal to the peer replica.
func (c *Client) Withdraw(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	ctx, cancel := c.withDeadline(context.Background())
	defer cancel()

	resp, err := c.rpc.Withdraw(ctx, &walletrpc.WithdrawRequest{
		AccountID: accountID, Amount: amount, TransactionID: transactionID,
	})
	if err != nil {
		return false, "", 0, fmt.Errorf("replication: withdraw rpc failed: %w", err)
	}
	return resp.Success, resp.Message, resp.NewBalance, nil
}

// GetBalance queries the peer replica's view of an account. The Replicated
// Writer never calls this directly — reads are served locally — but the
// Failover Monitor and operational tooling can use it to detect divergence.
func (c *Client) GetBalance(accountID string) (bool, float64, string, error) {
	ctx, cancel := c.withDeadline(context.Background())
	defer cancel()

	resp, err := c.rpc.GetBalance(ctx, &walletrpc.GetBalanceRequest{AccountID: accountID})
	if err != nil {
		return false, 0, "", fmt.Errorf("replication: get_balance rpc failed: %w", err)
	}
	return resp.Success, resp.Balance, resp.Message, nil
}

// Health probes the peer for the Failover Monitor. ctx carries its own
// caller-supplied deadline rather than c.callTimeout, since the monitor's
// probe interval and timeout are configured independently of RPC calls.
func (c *Client) Health(ctx context.Context) (*walletrpc.HealthResponse, error) {
	resp, err := c.rpc.Health(ctx, &walletrpc.HealthRequest{})
	if err != nil {
		return nil, fmt.Errorf("replication: health rpc failed: %w", err)
	}
	return resp, nil
}

package backupserver_test

import (
	"context"
	"net"
	"testing"

	"ftwallet/internal/ledger"
	"ftwallet/internal/ledger/backupserver"
	"ftwallet/internal/ledger/walletrpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

func dialTestServer(t *testing.T, capability ledger.Capability, role string) walletrpc.WalletBackupClient {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer()
	backupserver.New(capability, role).Register(grpcServer)

	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return walletrpc.NewWalletBackupClient(conn)
}

func TestServer_DepositWithdrawGetBalance(t *testing.T) {
	dir := t.TempDir()
	engine, err := ledger.New(dir, "wallets.json", "transactions.json")
	require.NoError(t, err)

	client := dialTestServer(t, engine, "backup")
	ctx := context.Background()

	depositResp, err := client.Deposit(ctx, &walletrpc.DepositRequest{AccountID: "alice", Amount: 100, TransactionID: "t1"})
	require.NoError(t, err)
	assert.True(t, depositResp.Success)
	assert.Equal(t, float64(100), depositResp.NewBalance)
	assert.Equal(t, "t1", depositResp.TransactionID)

	balanceResp, err := client.GetBalance(ctx, &walletrpc.GetBalanceRequest{AccountID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, float64(100), balanceResp.Balance)

	withdrawResp, err := client.Withdraw(ctx, &walletrpc.WithdrawRequest{AccountID: "alice", Amount: 40, TransactionID: "t2"})
	require.NoError(t, err)
	assert.True(t, withdrawResp.Success)
	assert.Equal(t, float64(60), withdrawResp.NewBalance)
	assert.Equal(t, "t2", withdrawResp.TransactionID)
}

func TestServer_DepositIsIdempotentAcrossRPCCalls(t *testing.T) {
	dir := t.TempDir()
	engine, err := ledger.New(dir, "wallets.json", "transactions.json")
	require.NoError(t, err)

	client := dialTestServer(t, engine, "backup")
	ctx := context.Background()

	req := &walletrpc.DepositRequest{AccountID: "alice", Amount: 50, TransactionID: "dup"}
	first, err := client.Deposit(ctx, req)
	require.NoError(t, err)
	second, err := client.Deposit(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	balanceResp, err := client.GetBalance(ctx, &walletrpc.GetBalanceRequest{AccountID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, float64(50), balanceResp.Balance)
}

func TestServer_Health(t *testing.T) {
	dir := t.TempDir()
	engine, err := ledger.New(dir, "wallets.json", "transactions.json")
	require.NoError(t, err)

	client := dialTestServer(t, engine, "primary")
	resp, err := client.Health(context.Background(), &walletrpc.HealthRequest{})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Role)
}

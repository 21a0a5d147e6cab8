package walletrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	WalletBackup_Deposit_FullMethodName    = "/walletrpc.WalletBackup/Deposit"
	WalletBackup_Withdraw_FullMethodName   = "/walletrpc.WalletBackup/Withdraw"
	WalletBackup_GetBalance_FullMethodName = "/walletrpc.WalletBackup/GetBalance"
	WalletBackup_Health_FullMethodName     = "/walletrpc.WalletBackup/Health"
)

// jsonCallOption forces every call made through this package onto the JSON
// codec registered in codec.go, regardless of what the caller dialed with.
var jsonCallOption = grpc.CallContentSubtype(codecName)

// WalletBackupClient is the client API for the replica-to-replica RPC
// surface: the same three ledger operations the HTTP adapter exposes, plus
// a Health check for the Failover Monitor.
type WalletBackupClient interface {
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*TransactionResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*TransactionResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type walletBackupClient struct {
	cc grpc.ClientConnInterface
}

// NewWalletBackupClient wraps an already-dialed connection. Callers must
// have dialed with grpc.WithDefaultCallOptions(jsonCallOption) or rely on
// the per-call option added here — both work, the per-call option is kept
// so a single ClientConn can in principle serve more than one codec.
func NewWalletBackupClient(cc grpc.ClientConnInterface) WalletBackupClient {
	return &walletBackupClient{cc}
}

func (c *walletBackupClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	cOpts := append([]grpc.CallOption{jsonCallOption}, opts...)
	out := new(TransactionResponse)
	if err := c.cc.Invoke(ctx, WalletBackup_Deposit_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletBackupClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	cOpts := append([]grpc.CallOption{jsonCallOption}, opts...)
	out := new(TransactionResponse)
	if err := c.cc.Invoke(ctx, WalletBackup_Withdraw_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletBackupClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	cOpts := append([]grpc.CallOption{jsonCallOption}, opts...)
	out := new(GetBalanceResponse)
	if err := c.cc.Invoke(ctx, WalletBackup_GetBalance_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletBackupClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	cOpts := append([]grpc.CallOption{jsonCallOption}, opts...)
	out := new(HealthResponse)
	if err := c.cc.Invoke(ctx, WalletBackup_Health_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// WalletBackupServer is the server API for WalletBackup. All implementations
// must embed UnimplementedWalletBackupServer for forward compatibility.
type WalletBackupServer interface {
	Deposit(context.Context, *DepositRequest) (*TransactionResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*TransactionResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	mustEmbedUnimplementedWalletBackupServer()
}

// UnimplementedWalletBackupServer must be embedded to have forward
// compatible implementations.
type UnimplementedWalletBackupServer struct{}

func (UnimplementedWalletBackupServer) Deposit(context.Context, *DepositRequest) (*TransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedWalletBackupServer) Withdraw(context.Context, *WithdrawRequest) (*TransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedWalletBackupServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedWalletBackupServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}
func (UnimplementedWalletBackupServer) mustEmbedUnimplementedWalletBackupServer() {}

// UnsafeWalletBackupServer may be embedded to opt out of forward
// compatibility for this service.
type UnsafeWalletBackupServer interface {
	mustEmbedUnimplementedWalletBackupServer()
}

func RegisterWalletBackupServer(s grpc.ServiceRegistrar, srv WalletBackupServer) {
	s.RegisterService(&WalletBackup_ServiceDesc, srv)
}

func _WalletBackup_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WalletBackupServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WalletBackup_Deposit_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WalletBackupServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WalletBackup_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WalletBackupServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WalletBackup_Withdraw_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WalletBackupServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WalletBackup_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WalletBackupServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WalletBackup_GetBalance_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WalletBackupServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WalletBackup_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WalletBackupServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WalletBackup_Health_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WalletBackupServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// WalletBackup_ServiceDesc is the grpc.ServiceDesc for WalletBackup. It's
// only intended for direct use with grpc.RegisterService, and not to be
// introspected or modified (even as a copy).
var WalletBackup_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "walletrpc.WalletBackup",
	HandlerType: (*WalletBackupServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Deposit", Handler: _WalletBackup_Deposit_Handler},
		{MethodName: "Withdraw", Handler: _WalletBackup_Withdraw_Handler},
		{MethodName: "GetBalance", Handler: _WalletBackup_GetBalance_Handler},
		{MethodName: "Health", Handler: _WalletBackup_Health_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/ledger/walletrpc/wallet.proto",
}

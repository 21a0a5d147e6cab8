package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ftwallet/internal/domain/models"
	"ftwallet/internal/infrastructure/messaging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDependencies struct {
	depositSuccess  bool
	depositMessage  string
	depositBalance  float64
	depositErr      error
	withdrawSuccess bool
	withdrawMessage string
	withdrawBalance float64
	withdrawErr     error
	balanceSuccess  bool
	balance         float64
	balanceMessage  string
	inFailover      bool
	publisher       messaging.EventPublisher
	auditedRecords  []*models.TransactionRecord
}

func (f *fakeDependencies) Deposit(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	return f.depositSuccess, f.depositMessage, f.depositBalance, f.depositErr
}

func (f *fakeDependencies) Withdraw(accountID string, amount float64, transactionID string) (bool, string, float64, error) {
	return f.withdrawSuccess, f.withdrawMessage, f.withdrawBalance, f.withdrawErr
}

func (f *fakeDependencies) GetBalance(accountID string) (bool, float64, string) {
	return f.balanceSuccess, f.balance, f.balanceMessage
}

func (f *fakeDependencies) InFailoverMode() bool { return f.inFailover }

func (f *fakeDependencies) EventPublisher() messaging.EventPublisher { return f.publisher }

func (f *fakeDependencies) RecordAudit(rec *models.TransactionRecord) {
	f.auditedRecords = append(f.auditedRecords, rec)
}

func (f *fakeDependencies) Replica() string { return "primary" }

func newTestRouter(deps *fakeDependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/deposit", MakeDepositHandler(deps))
	router.POST("/withdraw", MakeWithdrawHandler(deps))
	router.POST("/balance", MakeBalanceHandler(deps))
	router.GET("/health", MakeHealthHandler(deps))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDepositHandler_SuccessReturns200(t *testing.T) {
	deps := &fakeDependencies{
		depositSuccess: true,
		depositMessage: "deposit successful",
		depositBalance: 150,
		publisher:      messaging.NewNoOpEventPublisher(),
	}
	router := newTestRouter(deps)

	rec := doJSON(t, router, http.MethodPost, "/deposit", map[string]interface{}{
		"account_id": "acc-1", "amount": 150, "transaction_id": "txn-1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 150.0, body["new_balance"])
}

func TestDepositHandler_GeneratesTransactionIDWhenOmitted(t *testing.T) {
	deps := &fakeDependencies{
		depositSuccess: true,
		depositMessage: "deposit successful",
		publisher:      messaging.NewNoOpEventPublisher(),
	}
	router := newTestRouter(deps)

	rec := doJSON(t, router, http.MethodPost, "/deposit", map[string]interface{}{
		"account_id": "acc-1", "amount": 50,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, deps.auditedRecords, 1)
	assert.NotEmpty(t, deps.auditedRecords[0].TransactionID)
}

func TestDepositHandler_RejectionReturns400(t *testing.T) {
	deps := &fakeDependencies{
		depositSuccess: false,
		depositMessage: "amount must be positive",
		publisher:      messaging.NewNoOpEventPublisher(),
	}
	router := newTestRouter(deps)

	rec := doJSON(t, router, http.MethodPost, "/deposit", map[string]interface{}{
		"account_id": "acc-1", "amount": -10, "transaction_id": "txn-2",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDepositHandler_EngineFailureReturns500(t *testing.T) {
	deps := &fakeDependencies{
		depositSuccess: false,
		depositMessage: "deposit failed: disk full",
		publisher:      messaging.NewNoOpEventPublisher(),
	}
	router := newTestRouter(deps)

	rec := doJSON(t, router, http.MethodPost, "/deposit", map[string]interface{}{
		"account_id": "acc-1", "amount": 10, "transaction_id": "txn-3",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWithdrawHandler_InsufficientFundsReturns400(t *testing.T) {
	deps := &fakeDependencies{
		withdrawSuccess: false,
		withdrawMessage: "insufficient funds",
		publisher:       messaging.NewNoOpEventPublisher(),
	}
	router := newTestRouter(deps)

	rec := doJSON(t, router, http.MethodPost, "/withdraw", map[string]interface{}{
		"account_id": "acc-1", "amount": 1000, "transaction_id": "txn-4",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBalanceHandler_AlwaysReturns200(t *testing.T) {
	deps := &fakeDependencies{
		balanceSuccess: true,
		balance:        42,
		publisher:      messaging.NewNoOpEventPublisher(),
	}
	router := newTestRouter(deps)

	rec := doJSON(t, router, http.MethodPost, "/balance", map[string]interface{}{"account_id": "acc-1"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 42.0, body["balance"])
}

func TestHealthHandler_ReportsFailoverMode(t *testing.T) {
	deps := &fakeDependencies{inFailover: true, publisher: messaging.NewNoOpEventPublisher()}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["failover_mode"])
}

// Command client is a smoke-test CLI for the running wallet service. It
// mirrors the original project's example_client.py: a deposit/withdraw/
// balance call, retried with the same transaction_id on transport failure
// or a 5xx response, plus a demonstration that replaying a transaction_id
// after it already succeeded is a no-op.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

var baseURL = getenv("BASE_URL", "http://localhost:8000")

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type mutationResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
}

type balanceResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
	Message string  `json:"message"`
}

func postWithRetry(path string, payload map[string]interface{}, maxAttempts int) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		httpClient := http.Client{Timeout: 5 * time.Second}
		resp, err := httpClient.Post(baseURL+path, "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("attempt %d/%d: %s failed: %v, retrying\n", attempt, maxAttempts, path, err)
			lastErr = err
			time.Sleep(time.Second)
			continue
		}
		if resp.StatusCode >= 500 {
			fmt.Printf("attempt %d/%d: %s returned %d, retrying\n", attempt, maxAttempts, path, resp.StatusCode)
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			time.Sleep(time.Second)
			continue
		}
		return resp, nil
	}
	return nil, fmt.Errorf("%s failed after %d attempts: %w", path, maxAttempts, lastErr)
}

func deposit(accountID string, amount float64, transactionID string) (*mutationResponse, error) {
	resp, err := postWithRetry("/deposit", map[string]interface{}{
		"account_id":     accountID,
		"amount":         amount,
		"transaction_id": transactionID,
	}, 3)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func withdraw(accountID string, amount float64, transactionID string) (*mutationResponse, error) {
	resp, err := postWithRetry("/withdraw", map[string]interface{}{
		"account_id":     accountID,
		"amount":         amount,
		"transaction_id": transactionID,
	}, 3)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getBalance(accountID string) (*balanceResponse, error) {
	resp, err := postWithRetry("/balance", map[string]interface{}{"account_id": accountID}, 3)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func main() {
	account := getenv("DEMO_ACCOUNT_ID", "user123")

	fmt.Println("=== Test 1: Deposit ===")
	if r, err := deposit(account, 1000.00, uuid.NewString()); err != nil {
		fmt.Println("error:", err)
	} else {
		fmt.Printf("%+v\n", r)
	}

	fmt.Println("\n=== Test 2: Check Balance ===")
	if r, err := getBalance(account); err != nil {
		fmt.Println("error:", err)
	} else {
		fmt.Printf("%+v\n", r)
	}

	fmt.Println("\n=== Test 3: Withdraw ===")
	if r, err := withdraw(account, 250.50, uuid.NewString()); err != nil {
		fmt.Println("error:", err)
	} else {
		fmt.Printf("%+v\n", r)
	}

	fmt.Println("\n=== Test 4: Check Balance Again ===")
	if r, err := getBalance(account); err != nil {
		fmt.Println("error:", err)
	} else {
		fmt.Printf("%+v\n", r)
	}

	fmt.Println("\n=== Test 5: Replaying the Same Transaction ID Is a No-Op ===")
	txnID := uuid.NewString()
	fmt.Println("first request:")
	first, err := deposit(account, 500.00, txnID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%+v\n", first)

	fmt.Println("second request with same transaction_id (should return the same cached result):")
	second, err := deposit(account, 500.00, txnID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%+v\n", second)
}

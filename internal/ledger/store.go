package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ftwallet/internal/domain/models"
)

// loadWallets reads the Wallet Store file. A missing file is not an error —
// it means a fresh replica with no accounts yet.
func loadWallets(path string) (map[string]float64, error) {
	wallets := make(map[string]float64)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return wallets, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet store: %w", err)
	}

	if len(data) == 0 {
		return wallets, nil
	}

	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, fmt.Errorf("failed to parse wallet store: %w", err)
	}

	return wallets, nil
}

// saveWallets rewrites the whole Wallet Store file. The spec's reference
// behavior writes directly rather than through a temp file; only the
// Transaction Log needs the atomic-replace treatment (§4.A).
func saveWallets(path string, wallets map[string]float64) error {
	data, err := json.MarshalIndent(wallets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet store: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write wallet store: %w", err)
	}

	return nil
}

// loadTransactions reads the Transaction Log file.
func loadTransactions(path string) (map[string]*models.TransactionRecord, error) {
	transactions := make(map[string]*models.TransactionRecord)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return transactions, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction log: %w", err)
	}

	if len(data) == 0 {
		return transactions, nil
	}

	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transaction log: %w", err)
	}

	for id, rec := range transactions {
		rec.TransactionID = id
	}

	return transactions, nil
}

// saveTransactions persists the Transaction Log via temp-file + atomic
// rename, so a reader never observes a torn file (I3).
func saveTransactions(path string, transactions map[string]*models.TransactionRecord) error {
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transaction log: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp transaction log: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp transaction log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp transaction log: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace transaction log: %w", err)
	}

	return nil
}

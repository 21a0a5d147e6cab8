package audit

import (
	"context"
	"fmt"
	"time"

	"ftwallet/internal/domain/models"
	"ftwallet/internal/pkg/logging"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLog mirrors committed Transaction Records into a `transactions`
// table, tagged with the replica that produced them, purely for durable
// cross-replica analytics. It is never consulted to answer a request —
// losing it does not compromise I1–I6, which is why publish failures here
// are logged and swallowed rather than propagated.
type PostgresLog struct {
	pool    *pgxpool.Pool
	replica string
}

// NewPostgresLog opens a pooled connection and verifies it with a ping.
func NewPostgresLog(ctx context.Context, cfg *Config, replica string) (*PostgresLog, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("audit: failed to parse connection string: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxOpenConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("audit: failed to ping database: %w", err)
	}

	logging.Info("audit log connected", map[string]interface{}{"replica": replica})

	return &PostgresLog{pool: pool, replica: replica}, nil
}

// Record mirrors a single committed Transaction Record. Callers treat a
// non-nil error as a logging concern only.
func (p *PostgresLog) Record(ctx context.Context, rec *models.TransactionRecord) error {
	query := `
		INSERT INTO transactions
			(transaction_id, replica, operation, account_id, amount, success, message, new_balance, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (transaction_id, replica) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		rec.TransactionID, p.replica, string(rec.Operation), rec.AccountID,
		rec.Amount, rec.Success, rec.Message, rec.NewBalance, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("audit: failed to record transaction %s: %w", rec.TransactionID, err)
	}
	return nil
}

// Close releases the connection pool.
func (p *PostgresLog) Close() {
	p.pool.Close()
}

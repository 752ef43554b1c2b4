// Package txmanager runs functions inside SERIALIZABLE transactions on a
// metered database handle, retrying serialization failures.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Tsolgiun/office-plus-booking/pkg/dbmetrics"
)

// maxRetries bounds the number of attempts after a serialization failure
// (SQLSTATE 40001). Contention on a single slot resolves within a couple
// of retries; anything past that is surfaced to the caller.
const maxRetries = 3

// pgSerializationFailure is the SQLSTATE Postgres raises when a
// serializable transaction must be retried.
const pgSerializationFailure = "40001"

// TransactionManager runs workloads in serializable transactions.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over a metered DB.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction. The
// transaction is stored in the context handed to fn, so repository calls
// made with that context automatically run on it. On SQLSTATE 40001 the
// whole fn is retried with a fresh transaction, up to maxRetries times.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("txmanager: serialization retries exhausted: %w", lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTransaction(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}

package dbmetrics

import "context"

type ctxKey struct{}

var txKey ctxKey

// WithTransaction returns a context carrying an open transaction.
// Repositories pick it up through GetExecutor.
func WithTransaction(ctx context.Context, tx DBExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction stored in ctx, or fallback when the
// call is not running inside a transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(DBExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an open transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(DBExecutor)
	return ok
}

package dbmetrics

import "context"

type ctxKey int

const txKey ctxKey = iota

// WithTx stores the active transaction executor in the context. Repositories
// pick it up via GetExecutor, so the same repository code runs inside and
// outside transactions.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction executor from the context when one is
// active, otherwise the fallback (usually the repository's own DB handle).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}

package repository

import (
	"context"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

// SaveTransaction appends one ledger entry. Transactions are append-only;
// there is no update path.
func (r *Repository) SaveTransaction(ctx context.Context, transaction models.Transaction) error {
	lock := r.keyLock(store.KeyTransactions)
	lock.Lock()
	defer lock.Unlock()

	transactions := getList[models.Transaction](ctx, r, store.KeyTransactions)
	transactions = append(transactions, transaction)

	if err := putList(ctx, r, store.KeyTransactions, transactions); err != nil {
		return err
	}

	zap.L().Info("Transaction recorded",
		zap.String("transaction_id", transaction.Id),
		zap.String("type", transaction.Type),
		zap.String("reference", transaction.Reference))
	return nil
}

// GetTransactions returns the full ledger, empty when none.
func (r *Repository) GetTransactions(ctx context.Context) []models.Transaction {
	return getList[models.Transaction](ctx, r, store.KeyTransactions)
}

// DeleteTransactions removes the ledger collection. Idempotent.
func (r *Repository) DeleteTransactions(ctx context.Context) error {
	lock := r.keyLock(store.KeyTransactions)
	lock.Lock()
	defer lock.Unlock()

	return r.removeRaw(ctx, store.KeyTransactions)
}

package repository

import (
	"context"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

// SaveInvestment appends one investment: fetch the full list, append,
// rewrite. O(n) per insert; fine for a single-device dataset.
func (r *Repository) SaveInvestment(ctx context.Context, investment models.Investment) error {
	lock := r.keyLock(store.KeyInvestments)
	lock.Lock()
	defer lock.Unlock()

	investments := getList[models.Investment](ctx, r, store.KeyInvestments)
	investments = append(investments, investment)

	if err := putList(ctx, r, store.KeyInvestments, investments); err != nil {
		return err
	}

	zap.L().Info("Investment saved",
		zap.String("investment_id", investment.Id),
		zap.String("fund_id", investment.FundId),
		zap.String("amount", investment.Amount.String()))
	return nil
}

// GetInvestments returns all stored investments, empty when none.
func (r *Repository) GetInvestments(ctx context.Context) []models.Investment {
	return getList[models.Investment](ctx, r, store.KeyInvestments)
}

// UpdateInvestment applies a mutation to the investment with the given id
// and rewrites the list. An unmatched id is a silent no-op, consistent with
// the not-found-is-not-an-error read semantics.
func (r *Repository) UpdateInvestment(ctx context.Context, investmentId string, apply func(*models.Investment)) error {
	lock := r.keyLock(store.KeyInvestments)
	lock.Lock()
	defer lock.Unlock()

	investments := getList[models.Investment](ctx, r, store.KeyInvestments)
	for i := range investments {
		if investments[i].Id == investmentId {
			apply(&investments[i])
			break
		}
	}

	return putList(ctx, r, store.KeyInvestments, investments)
}

// DeleteInvestments removes the whole collection. Idempotent; subsequent
// reads return an empty list.
func (r *Repository) DeleteInvestments(ctx context.Context) error {
	lock := r.keyLock(store.KeyInvestments)
	lock.Lock()
	defer lock.Unlock()

	return r.removeRaw(ctx, store.KeyInvestments)
}

package repository

import (
	"context"
	"strings"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

// SaveFunds replaces the whole fund catalog. Used once at first launch to
// seed sample data.
func (r *Repository) SaveFunds(ctx context.Context, funds []models.Fund) error {
	lock := r.keyLock(store.KeyFundsData)
	lock.Lock()
	defer lock.Unlock()

	if err := putList(ctx, r, store.KeyFundsData, funds); err != nil {
		return err
	}

	zap.L().Info("Fund catalog saved", zap.Int("count", len(funds)))
	return nil
}

// GetFunds returns the stored catalog, empty when none.
func (r *Repository) GetFunds(ctx context.Context) []models.Fund {
	return getList[models.Fund](ctx, r, store.KeyFundsData)
}

// SearchFunds filters the catalog with a case-insensitive substring match
// over name, description and fund manager, AND-ed with an exact category
// match. An empty query matches all funds; an empty category means no
// category restriction.
func (r *Repository) SearchFunds(ctx context.Context, query, category string) []models.Fund {
	funds := r.GetFunds(ctx)
	needle := strings.ToLower(query)

	matched := make([]models.Fund, 0, len(funds))
	for _, fund := range funds {
		matchesQuery := needle == "" ||
			strings.Contains(strings.ToLower(fund.Name), needle) ||
			strings.Contains(strings.ToLower(fund.Description), needle) ||
			strings.Contains(strings.ToLower(fund.FundManager), needle)

		matchesCategory := category == "" || fund.Category == category

		if matchesQuery && matchesCategory {
			matched = append(matched, fund)
		}
	}
	return matched
}

// DeleteFunds removes the catalog collection. Idempotent.
func (r *Repository) DeleteFunds(ctx context.Context) error {
	lock := r.keyLock(store.KeyFundsData)
	lock.Lock()
	defer lock.Unlock()

	return r.removeRaw(ctx, store.KeyFundsData)
}

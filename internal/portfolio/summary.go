// Package portfolio holds the valuation engine and the invest/redeem
// operations built on top of the repository.
package portfolio

import (
	"fundtrack-go/internal/models"

	"github.com/shopspring/decimal"
)

// ComputeSummary aggregates active investments against current fund NAVs.
// It is a pure function: input slices are never mutated, the returned
// summary carries fresh Investment copies with refreshed CurrentValue.
//
// An investment whose fund is missing from the catalog keeps its previously
// stored CurrentValue, so dangling fund references degrade instead of
// failing.
func ComputeSummary(investments []models.Investment, funds []models.Fund) models.PortfolioSummary {
	fundsById := make(map[string]models.Fund, len(funds))
	for _, fund := range funds {
		fundsById[fund.Id] = fund
	}

	totalInvested := decimal.Zero
	totalValue := decimal.Zero
	active := make([]models.Investment, 0, len(investments))

	for _, investment := range investments {
		if investment.Status != models.InvestmentActive {
			continue
		}

		totalInvested = totalInvested.Add(investment.Amount)

		valued := investment
		if fund, ok := fundsById[investment.FundId]; ok {
			valued.CurrentValue = investment.Units.Mul(fund.CurrentNAV)
		}
		totalValue = totalValue.Add(valued.CurrentValue)

		active = append(active, valued)
	}

	totalGainLoss := totalValue.Sub(totalInvested)

	totalGainLossPercentage := decimal.Zero
	if totalInvested.IsPositive() {
		totalGainLossPercentage = totalGainLoss.Div(totalInvested).Mul(decimal.NewFromInt(100))
	}

	return models.PortfolioSummary{
		TotalValue:              totalValue,
		TotalInvested:           totalInvested,
		TotalGainLoss:           totalGainLoss,
		TotalGainLossPercentage: totalGainLossPercentage,
		Investments:             active,
	}
}

package models

import "github.com/shopspring/decimal"

// PortfolioSummary is the derived valuation of all active holdings against
// current fund NAVs. It is recomputed on demand and may be cached with a
// wall-clock TTL.
type PortfolioSummary struct {
	TotalValue              decimal.Decimal `json:"totalValue"`
	TotalInvested           decimal.Decimal `json:"totalInvested"`
	TotalGainLoss           decimal.Decimal `json:"totalGainLoss"`
	TotalGainLossPercentage decimal.Decimal `json:"totalGainLossPercentage"`
	Investments             []Investment    `json:"investments"`
}

// SIPProjection is the outcome of a systematic investment plan projection.
type SIPProjection struct {
	TotalInvested decimal.Decimal `json:"totalInvested"`
	MaturityValue decimal.Decimal `json:"maturityValue"`
	TotalGain     decimal.Decimal `json:"totalGain"`
}

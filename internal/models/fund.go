package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund risk levels.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// FundCategories lists the catalog categories known to the app.
var FundCategories = []string{
	"Equity",
	"Debt",
	"Hybrid",
	"Index",
	"ELSS",
	"International",
	"Sectoral",
	"Thematic",
}

// Fund is a catalog entry. The catalog is seeded once at first launch and is
// immutable afterward; NAVs are static sample data, not a live feed.
type Fund struct {
	Id                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	CurrentNAV        decimal.Decimal `json:"currentNAV"`
	OneYearReturn     decimal.Decimal `json:"oneYearReturn"`
	ThreeYearReturn   decimal.Decimal `json:"threeYearReturn"`
	FiveYearReturn    decimal.Decimal `json:"fiveYearReturn"`
	RiskLevel         string          `json:"riskLevel"`
	FundManager       string          `json:"fundManager"`
	InceptionDate     time.Time       `json:"inceptionDate"`
	TotalAssets       decimal.Decimal `json:"totalAssets"`
	ExpenseRatio      decimal.Decimal `json:"expenseRatio"`
	Benchmark         string          `json:"benchmark"`
}

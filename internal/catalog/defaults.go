package catalog

import (
	"sort"
	"time"

	"fundtrack-go/internal/models"

	"github.com/shopspring/decimal"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// DefaultFunds returns the built-in sample catalog, used when no funds file
// is configured.
func DefaultFunds() []models.Fund {
	return []models.Fund{
		{
			Id:                "1",
			Name:              "Bluechip Equity Fund",
			Category:          "Equity",
			Description:       "Large-cap equity fund investing in established blue-chip companies",
			MinimumInvestment: decimal.RequireFromString("5000"),
			CurrentNAV:        decimal.RequireFromString("85.45"),
			OneYearReturn:     decimal.RequireFromString("12.5"),
			ThreeYearReturn:   decimal.RequireFromString("15.2"),
			FiveYearReturn:    decimal.RequireFromString("13.8"),
			RiskLevel:         models.RiskHigh,
			FundManager:       "Rajesh Sharma",
			InceptionDate:     date("2015-03-12"),
			TotalAssets:       decimal.RequireFromString("125000000000"),
			ExpenseRatio:      decimal.RequireFromString("1.05"),
			Benchmark:         "NIFTY 50 TRI",
		},
		{
			Id:                "2",
			Name:              "Corporate Bond Fund",
			Category:          "Debt",
			Description:       "Debt fund investing in high-quality corporate bonds",
			MinimumInvestment: decimal.RequireFromString("1000"),
			CurrentNAV:        decimal.RequireFromString("42.18"),
			OneYearReturn:     decimal.RequireFromString("7.2"),
			ThreeYearReturn:   decimal.RequireFromString("8.1"),
			FiveYearReturn:    decimal.RequireFromString("7.8"),
			RiskLevel:         models.RiskLow,
			FundManager:       "Priya Nair",
			InceptionDate:     date("2012-08-01"),
			TotalAssets:       decimal.RequireFromString("84000000000"),
			ExpenseRatio:      decimal.RequireFromString("0.45"),
			Benchmark:         "CRISIL Corporate Bond Index",
		},
		{
			Id:                "3",
			Name:              "Balanced Advantage Fund",
			Category:          "Hybrid",
			Description:       "Dynamic asset allocation fund balancing equity and debt exposure",
			MinimumInvestment: decimal.RequireFromString("2500"),
			CurrentNAV:        decimal.RequireFromString("58.92"),
			OneYearReturn:     decimal.RequireFromString("10.4"),
			ThreeYearReturn:   decimal.RequireFromString("11.7"),
			FiveYearReturn:    decimal.RequireFromString("10.9"),
			RiskLevel:         models.RiskMedium,
			FundManager:       "Amit Verma",
			InceptionDate:     date("2016-11-20"),
			TotalAssets:       decimal.RequireFromString("67000000000"),
			ExpenseRatio:      decimal.RequireFromString("0.85"),
			Benchmark:         "NIFTY 50 Hybrid Composite",
		},
		{
			Id:                "4",
			Name:              "Nifty Index Fund",
			Category:          "Index",
			Description:       "Passive fund tracking the NIFTY 50 index",
			MinimumInvestment: decimal.RequireFromString("500"),
			CurrentNAV:        decimal.RequireFromString("152.30"),
			OneYearReturn:     decimal.RequireFromString("11.8"),
			ThreeYearReturn:   decimal.RequireFromString("14.5"),
			FiveYearReturn:    decimal.RequireFromString("12.9"),
			RiskLevel:         models.RiskMedium,
			FundManager:       "Sneha Iyer",
			InceptionDate:     date("2010-01-15"),
			TotalAssets:       decimal.RequireFromString("210000000000"),
			ExpenseRatio:      decimal.RequireFromString("0.15"),
			Benchmark:         "NIFTY 50 TRI",
		},
		{
			Id:                "5",
			Name:              "Tax Saver ELSS Fund",
			Category:          "ELSS",
			Description:       "Equity-linked savings scheme with a three year lock-in",
			MinimumInvestment: decimal.RequireFromString("500"),
			CurrentNAV:        decimal.RequireFromString("96.74"),
			OneYearReturn:     decimal.RequireFromString("13.6"),
			ThreeYearReturn:   decimal.RequireFromString("16.8"),
			FiveYearReturn:    decimal.RequireFromString("14.2"),
			RiskLevel:         models.RiskHigh,
			FundManager:       "Karthik Menon",
			InceptionDate:     date("2014-06-05"),
			TotalAssets:       decimal.RequireFromString("45000000000"),
			ExpenseRatio:      decimal.RequireFromString("1.25"),
			Benchmark:         "NIFTY 500 TRI",
		},
		{
			Id:                "6",
			Name:              "Global Opportunities Fund",
			Category:          "International",
			Description:       "Fund of funds investing in international equity markets",
			MinimumInvestment: decimal.RequireFromString("5000"),
			CurrentNAV:        decimal.RequireFromString("31.56"),
			OneYearReturn:     decimal.RequireFromString("9.1"),
			ThreeYearReturn:   decimal.RequireFromString("12.3"),
			FiveYearReturn:    decimal.RequireFromString("11.4"),
			RiskLevel:         models.RiskHigh,
			FundManager:       "Ananya Desai",
			InceptionDate:     date("2018-02-28"),
			TotalAssets:       decimal.RequireFromString("28000000000"),
			ExpenseRatio:      decimal.RequireFromString("1.45"),
			Benchmark:         "MSCI World Index",
		},
	}
}

// SortByPerformance orders funds by trailing return, best first. Period is
// one of "1y", "3y" or "5y"; anything else sorts by one year return.
func SortByPerformance(funds []models.Fund, period string) []models.Fund {
	sorted := make([]models.Fund, len(funds))
	copy(sorted, funds)

	sort.SliceStable(sorted, func(i, j int) bool {
		var a, b decimal.Decimal
		switch period {
		case "3y":
			a, b = sorted[i].ThreeYearReturn, sorted[j].ThreeYearReturn
		case "5y":
			a, b = sorted[i].FiveYearReturn, sorted[j].FiveYearReturn
		default:
			a, b = sorted[i].OneYearReturn, sorted[j].OneYearReturn
		}
		return a.GreaterThan(b)
	})

	return sorted
}

// FilterByRisk returns funds matching the given risk level, or all funds
// when level is empty.
func FilterByRisk(funds []models.Fund, level string) []models.Fund {
	if level == "" {
		return funds
	}

	filtered := make([]models.Fund, 0, len(funds))
	for _, fund := range funds {
		if fund.RiskLevel == level {
			filtered = append(filtered, fund)
		}
	}
	return filtered
}

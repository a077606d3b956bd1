package portfolio

import (
	"fundtrack-go/internal/models"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// CalculateSIP projects the maturity value of a systematic investment plan:
// a fixed monthly contribution compounding at the fund's annual return,
// contributions made at the start of each month.
func CalculateSIP(monthlyAmount, annualReturnPercent decimal.Decimal, years int) models.SIPProjection {
	months := decimal.NewFromInt(int64(years * 12))
	totalInvested := monthlyAmount.Mul(months)

	monthlyReturn := annualReturnPercent.Div(twelve).Div(hundred)
	if monthlyReturn.IsZero() {
		return models.SIPProjection{
			TotalInvested: totalInvested,
			MaturityValue: totalInvested,
			TotalGain:     decimal.Zero,
		}
	}

	// maturity = P * ((1+r)^n - 1) / r * (1+r)
	growth := one.Add(monthlyReturn).Pow(months)
	maturityValue := monthlyAmount.
		Mul(growth.Sub(one)).
		Div(monthlyReturn).
		Mul(one.Add(monthlyReturn))

	return models.SIPProjection{
		TotalInvested: totalInvested,
		MaturityValue: maturityValue,
		TotalGain:     maturityValue.Sub(totalInvested),
	}
}

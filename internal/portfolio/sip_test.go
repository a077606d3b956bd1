package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateSIPTotalInvested(t *testing.T) {
	projection := CalculateSIP(decimal.NewFromInt(5000), decimal.NewFromInt(12), 10)

	if !projection.TotalInvested.Equal(decimal.NewFromInt(600000)) {
		t.Errorf("Expected 600000 invested over 120 months, got %s", projection.TotalInvested)
	}
	if projection.MaturityValue.LessThanOrEqual(projection.TotalInvested) {
		t.Errorf("Expected growth at positive return, maturity %s", projection.MaturityValue)
	}
	if !projection.TotalGain.Equal(projection.MaturityValue.Sub(projection.TotalInvested)) {
		t.Errorf("Gain must equal maturity minus invested, got %s", projection.TotalGain)
	}
}

func TestCalculateSIPKnownValue(t *testing.T) {
	// 1000/month at 12% for 1 year: maturity ~= 12809.33.
	projection := CalculateSIP(decimal.NewFromInt(1000), decimal.NewFromInt(12), 1)

	low := decimal.NewFromInt(12800)
	high := decimal.NewFromInt(12820)
	if projection.MaturityValue.LessThan(low) || projection.MaturityValue.GreaterThan(high) {
		t.Errorf("Expected maturity near 12809, got %s", projection.MaturityValue)
	}
}

func TestCalculateSIPZeroReturn(t *testing.T) {
	projection := CalculateSIP(decimal.NewFromInt(1000), decimal.Zero, 5)

	if !projection.MaturityValue.Equal(projection.TotalInvested) {
		t.Errorf("Expected maturity == invested at 0%%, got %s", projection.MaturityValue)
	}
	if !projection.TotalGain.IsZero() {
		t.Errorf("Expected zero gain, got %s", projection.TotalGain)
	}
}

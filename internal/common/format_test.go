package common

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(decimal.RequireFromString("1234.5"))
	if got != "₹1234.50" {
		t.Errorf("Expected ₹1234.50, got %s", got)
	}
}

func TestFormatLargeNumber(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"125000000000", "₹12500.00 Cr"},
		{"25000000", "₹2.50 Cr"},
		{"350000", "₹3.50 L"},
		{"7500", "₹7.50 K"},
		{"950", "₹950.00"},
		{"-350000", "₹-3.50 L"},
	}

	for _, tc := range cases {
		got := FormatLargeNumber(decimal.RequireFromString(tc.amount))
		if got != tc.want {
			t.Errorf("FormatLargeNumber(%s): expected %s, got %s", tc.amount, tc.want, got)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.RequireFromString("12.5")); got != "+12.50%" {
		t.Errorf("Expected +12.50%%, got %s", got)
	}
	if got := FormatPercent(decimal.RequireFromString("-3.2")); got != "-3.20%" {
		t.Errorf("Expected -3.20%%, got %s", got)
	}
	if got := FormatPercent(decimal.Zero); got != "+0.00%" {
		t.Errorf("Expected +0.00%%, got %s", got)
	}
}

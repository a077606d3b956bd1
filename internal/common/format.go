package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Default separator widths
	DefaultWidth = 80
	WideWidth    = 100
)

// PrintSeparator prints a separator line with the specified character and width
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintSeparatorNewline prints a separator with a newline before it
func PrintSeparatorNewline(char string, width int) {
	fmt.Println("\n" + strings.Repeat(char, width))
}

// PrintHeader prints a formatted header with title and separators
func PrintHeader(title string, width int) {
	PrintSeparatorNewline("=", width)
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a formatted footer with message and separators
func PrintFooter(message string, width int) {
	PrintSeparatorNewline("=", width)
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// PrintBoxSeparator prints a box-drawing separator line (for sub-sections)
func PrintBoxSeparator(width int) {
	fmt.Println("├" + strings.Repeat("─", width))
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// BoxDetailPrefix returns the prefix for detail lines under list items
func BoxDetailPrefix(isLast bool) string {
	if isLast {
		return "   "
	}
	return "│  "
}

// FormatCurrency renders an amount in rupees with two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

var (
	crore = decimal.New(1, 7)
	lakh  = decimal.New(1, 5)
	thou  = decimal.New(1, 3)
)

// FormatLargeNumber renders an amount using Indian abbreviations (Cr, L, K).
func FormatLargeNumber(amount decimal.Decimal) string {
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(crore):
		return "₹" + amount.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return "₹" + amount.Div(lakh).StringFixed(2) + " L"
	case abs.GreaterThanOrEqual(thou):
		return "₹" + amount.Div(thou).StringFixed(2) + " K"
	default:
		return "₹" + amount.StringFixed(2)
	}
}

// FormatPercent renders a percentage with an explicit sign.
func FormatPercent(value decimal.Decimal) string {
	if value.IsNegative() {
		return value.StringFixed(2) + "%"
	}
	return "+" + value.StringFixed(2) + "%"
}

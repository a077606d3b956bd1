package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment statuses.
const (
	InvestmentActive   = "Active"
	InvestmentRedeemed = "Redeemed"
	InvestmentPartial  = "Partial"
)

// Transaction types.
const (
	TransactionSubscription = "SUBSCRIPTION"
	TransactionRedemption   = "REDEMPTION"
)

// Transaction statuses.
const (
	TransactionCompleted  = "Completed"
	TransactionProcessing = "Processing"
	TransactionFailed     = "Failed"
)

// Investment is a holding created by a successful invest action.
// Units = Amount / PurchaseNAV at creation and never change afterward.
// CurrentValue is refreshed by the valuation engine against the fund's
// current NAV but is not written back to storage automatically.
type Investment struct {
	Id           string          `json:"id"`
	UserId       string          `json:"userId"`
	FundId       string          `json:"fundId"`
	Amount       decimal.Decimal `json:"amount"`
	Units        decimal.Decimal `json:"units"`
	PurchaseNAV  decimal.Decimal `json:"purchaseNAV"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Status       string          `json:"status"`
}

// Transaction is an append-only ledger entry, immutable once written.
type Transaction struct {
	Id        string          `json:"id"`
	UserId    string          `json:"userId"`
	FundId    string          `json:"fundId"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Units     decimal.Decimal `json:"units"`
	NAV       decimal.Decimal `json:"nav"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
}

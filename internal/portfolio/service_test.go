package portfolio

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fundtrack-go/internal/memstore"
	"fundtrack-go/internal/models"
	"fundtrack-go/internal/repository"

	"github.com/shopspring/decimal"
)

func setupTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	cfg := &models.Config{
		Storage: models.StorageConfig{OpTimeout: 5 * time.Second},
		Session: models.SessionConfig{TTL: 30 * 24 * time.Hour},
		Cache:   models.CacheConfig{PortfolioTTL: time.Hour},
	}
	repo := repository.New(memstore.NewService(), cfg)
	service := NewService(repo)

	funds := []models.Fund{
		{
			Id:                "f1",
			Name:              "Bluechip Equity Fund",
			Category:          "Equity",
			MinimumInvestment: decimal.NewFromInt(500),
			CurrentNAV:        decimal.NewFromInt(100),
			RiskLevel:         models.RiskHigh,
		},
	}
	if err := repo.SaveFunds(context.Background(), funds); err != nil {
		t.Fatalf("SaveFunds failed: %v", err)
	}

	return service, repo
}

func TestInvestCreatesInvestmentAndLedgerEntry(t *testing.T) {
	service, repo := setupTestService(t)
	ctx := context.Background()

	investment, transaction, err := service.Invest(ctx, "u1", "f1", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("Invest failed: %v", err)
	}

	if !investment.Units.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected 10 units at NAV 100, got %s", investment.Units)
	}
	if investment.Status != models.InvestmentActive {
		t.Errorf("Expected Active, got %s", investment.Status)
	}
	if !investment.CurrentValue.Equal(investment.Amount) {
		t.Errorf("Expected initial currentValue == amount, got %s", investment.CurrentValue)
	}

	if transaction.Type != models.TransactionSubscription {
		t.Errorf("Expected SUBSCRIPTION, got %s", transaction.Type)
	}
	if transaction.Status != models.TransactionCompleted {
		t.Errorf("Expected Completed, got %s", transaction.Status)
	}
	if !strings.HasPrefix(transaction.Reference, "TXN") {
		t.Errorf("Expected TXN reference, got %s", transaction.Reference)
	}

	if got := repo.GetInvestments(ctx); len(got) != 1 {
		t.Errorf("Expected 1 persisted investment, got %d", len(got))
	}
	if got := repo.GetTransactions(ctx); len(got) != 1 {
		t.Errorf("Expected 1 persisted transaction, got %d", len(got))
	}
}

func TestInvestBelowMinimum(t *testing.T) {
	service, _ := setupTestService(t)

	_, _, err := service.Invest(context.Background(), "u1", "f1", decimal.NewFromInt(100))
	if !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("Expected ErrBelowMinimum, got: %v", err)
	}
}

func TestInvestUnknownFund(t *testing.T) {
	service, _ := setupTestService(t)

	_, _, err := service.Invest(context.Background(), "u1", "missing", decimal.NewFromInt(1000))
	if !errors.Is(err, ErrFundNotFound) {
		t.Errorf("Expected ErrFundNotFound, got: %v", err)
	}
}

func TestRedeemFull(t *testing.T) {
	service, repo := setupTestService(t)
	ctx := context.Background()

	investment, _, err := service.Invest(ctx, "u1", "f1", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("Invest failed: %v", err)
	}

	// Zero units means redeem everything.
	transaction, err := service.Redeem(ctx, "u1", investment.Id, decimal.Zero)
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}

	if transaction.Type != models.TransactionRedemption {
		t.Errorf("Expected REDEMPTION, got %s", transaction.Type)
	}
	if !transaction.Units.Equal(investment.Units) {
		t.Errorf("Expected all units redeemed, got %s", transaction.Units)
	}
	if !transaction.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected amount 1000 at NAV 100, got %s", transaction.Amount)
	}

	got := repo.GetInvestments(ctx)
	if got[0].Status != models.InvestmentRedeemed {
		t.Errorf("Expected Redeemed status, got %s", got[0].Status)
	}
	if !got[0].Units.Equal(investment.Units) {
		t.Errorf("Units must not change on redemption, got %s", got[0].Units)
	}
}

func TestRedeemPartial(t *testing.T) {
	service, repo := setupTestService(t)
	ctx := context.Background()

	investment, _, err := service.Invest(ctx, "u1", "f1", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("Invest failed: %v", err)
	}

	transaction, err := service.Redeem(ctx, "u1", investment.Id, decimal.NewFromInt(4))
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}

	if !transaction.Amount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("Expected amount 400, got %s", transaction.Amount)
	}

	got := repo.GetInvestments(ctx)
	if got[0].Status != models.InvestmentPartial {
		t.Errorf("Expected Partial status, got %s", got[0].Status)
	}
}

func TestRedeemValidation(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	investment, _, err := service.Invest(ctx, "u1", "f1", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("Invest failed: %v", err)
	}

	if _, err := service.Redeem(ctx, "u1", "missing", decimal.Zero); !errors.Is(err, ErrInvestmentNotFound) {
		t.Errorf("Expected ErrInvestmentNotFound, got: %v", err)
	}

	// Another user cannot redeem this holding.
	if _, err := service.Redeem(ctx, "u2", investment.Id, decimal.Zero); !errors.Is(err, ErrInvestmentNotFound) {
		t.Errorf("Expected ErrInvestmentNotFound for foreign user, got: %v", err)
	}

	if _, err := service.Redeem(ctx, "u1", investment.Id, decimal.NewFromInt(11)); !errors.Is(err, ErrInvalidUnits) {
		t.Errorf("Expected ErrInvalidUnits, got: %v", err)
	}

	if _, err := service.Redeem(ctx, "u1", investment.Id, decimal.Zero); err != nil {
		t.Fatalf("Full redeem failed: %v", err)
	}
	if _, err := service.Redeem(ctx, "u1", investment.Id, decimal.Zero); !errors.Is(err, ErrNotRedeemable) {
		t.Errorf("Expected ErrNotRedeemable after full redemption, got: %v", err)
	}
}

func TestSummaryComputesAndCaches(t *testing.T) {
	service, repo := setupTestService(t)
	ctx := context.Background()

	if _, _, err := service.Invest(ctx, "u1", "f1", decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("Invest failed: %v", err)
	}

	summary, err := service.Summary(ctx, "u1")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if !summary.TotalInvested.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected invested 1000, got %s", summary.TotalInvested)
	}

	// Second call is served from cache.
	if cached := repo.GetPortfolioCache(ctx); cached == nil {
		t.Error("Expected summary cached after computation")
	}
	again, err := service.Summary(ctx, "u1")
	if err != nil {
		t.Fatalf("Cached Summary failed: %v", err)
	}
	if !again.TotalInvested.Equal(summary.TotalInvested) {
		t.Errorf("Cached summary mismatch: %s vs %s", again.TotalInvested, summary.TotalInvested)
	}
}

func TestSummaryExcludesOtherUsers(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	if _, _, err := service.Invest(ctx, "u1", "f1", decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("Invest failed: %v", err)
	}
	if _, _, err := service.Invest(ctx, "u2", "f1", decimal.NewFromInt(5000)); err != nil {
		t.Fatalf("Invest failed: %v", err)
	}

	summary, err := service.Summary(ctx, "u1")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if !summary.TotalInvested.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected only u1 holdings, got %s", summary.TotalInvested)
	}
}

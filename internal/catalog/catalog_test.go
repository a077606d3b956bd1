package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fundtrack-go/internal/memstore"
	"fundtrack-go/internal/models"
	"fundtrack-go/internal/repository"

	"github.com/shopspring/decimal"
)

func writeFundsFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "funds.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write funds file: %v", err)
	}
	return path
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("Failed to parse decimal %q: %v", value, err)
	}
	return parsed
}

func testRepo() *repository.Repository {
	cfg := &models.Config{
		Storage: models.StorageConfig{OpTimeout: 5 * time.Second},
		Session: models.SessionConfig{TTL: 720 * time.Hour},
		Cache:   models.CacheConfig{PortfolioTTL: time.Hour},
	}
	return repository.New(memstore.NewService(), cfg)
}

func TestLoadFundsFile(t *testing.T) {
	path := writeFundsFile(t, `
funds:
  - id: "eq-1"
    name: "Test Equity Fund"
    category: "Equity"
    description: "Test fund"
    minimum_investment: 1000
    current_nav: 50.25
    one_year_return: 10.5
    three_year_return: 12.0
    five_year_return: 11.0
    risk_level: "High"
    fund_manager: "Test Manager"
    inception_date: "2020-01-01"
    total_assets: 1000000
    expense_ratio: 0.5
    benchmark: "NIFTY 50 TRI"
`)

	funds, err := LoadFundsFile(path)
	if err != nil {
		t.Fatalf("Failed to load funds file: %v", err)
	}
	if len(funds) != 1 {
		t.Fatalf("Expected 1 fund, got %d", len(funds))
	}

	fund := funds[0]
	if fund.Id != "eq-1" {
		t.Errorf("Expected id eq-1, got %s", fund.Id)
	}
	if !fund.CurrentNAV.Equal(mustDecimal(t, "50.25")) {
		t.Errorf("Expected NAV 50.25, got %s", fund.CurrentNAV)
	}
	if fund.InceptionDate.Year() != 2020 {
		t.Errorf("Expected inception year 2020, got %d", fund.InceptionDate.Year())
	}
}

func TestLoadFundsFileValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing id",
			content: "funds:\n  - name: \"No Id\"\n    current_nav: 10\n    risk_level: \"Low\"\n",
			wantErr: "missing id",
		},
		{
			name:    "missing name",
			content: "funds:\n  - id: \"f1\"\n    current_nav: 10\n    risk_level: \"Low\"\n",
			wantErr: "missing name",
		},
		{
			name:    "zero nav",
			content: "funds:\n  - id: \"f1\"\n    name: \"F1\"\n    current_nav: 0\n    risk_level: \"Low\"\n",
			wantErr: "non-positive NAV",
		},
		{
			name:    "bad risk level",
			content: "funds:\n  - id: \"f1\"\n    name: \"F1\"\n    current_nav: 10\n    risk_level: \"Extreme\"\n",
			wantErr: "unknown risk level",
		},
		{
			name:    "bad inception date",
			content: "funds:\n  - id: \"f1\"\n    name: \"F1\"\n    current_nav: 10\n    risk_level: \"Low\"\n    inception_date: \"01/01/2020\"\n",
			wantErr: "invalid inception date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFundsFile(t, tc.content)
			_, err := LoadFundsFile(path)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoadFundsFileMissing(t *testing.T) {
	_, err := LoadFundsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	seeded, err := Seed(ctx, repo, DefaultFunds())
	if err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}
	if !seeded {
		t.Fatal("Expected first seed to write funds")
	}

	stored := repo.GetFunds(ctx)
	if len(stored) != len(DefaultFunds()) {
		t.Fatalf("Expected %d funds, got %d", len(DefaultFunds()), len(stored))
	}

	replacement := []models.Fund{{Id: "only", Name: "Only Fund"}}
	seeded, err = Seed(ctx, repo, replacement)
	if err != nil {
		t.Fatalf("Failed on repeat seed: %v", err)
	}
	if seeded {
		t.Fatal("Expected repeat seed to be a no-op")
	}

	stored = repo.GetFunds(ctx)
	if len(stored) != len(DefaultFunds()) {
		t.Errorf("Expected catalog to be unchanged, got %d funds", len(stored))
	}
}

func TestSortByPerformance(t *testing.T) {
	funds := DefaultFunds()

	sorted := SortByPerformance(funds, "3y")
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ThreeYearReturn.GreaterThan(sorted[i-1].ThreeYearReturn) {
			t.Fatalf("Funds not sorted by 3y return at index %d", i)
		}
	}

	if funds[0].Id != DefaultFunds()[0].Id {
		t.Error("Expected input slice to be unchanged")
	}
}

func TestFilterByRisk(t *testing.T) {
	funds := DefaultFunds()

	low := FilterByRisk(funds, models.RiskLow)
	for _, fund := range low {
		if fund.RiskLevel != models.RiskLow {
			t.Errorf("Fund %s has risk %s, expected Low", fund.Id, fund.RiskLevel)
		}
	}
	if len(low) == 0 {
		t.Error("Expected at least one low risk fund in defaults")
	}

	all := FilterByRisk(funds, "")
	if len(all) != len(funds) {
		t.Errorf("Expected empty level to return all %d funds, got %d", len(funds), len(all))
	}
}

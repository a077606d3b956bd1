// Package catalog loads the fund catalog, either from a YAML file or from
// the built-in sample data, and seeds it into storage at first launch.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type fundEntry struct {
	Id                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	Category          string  `yaml:"category"`
	Description       string  `yaml:"description"`
	MinimumInvestment float64 `yaml:"minimum_investment"`
	CurrentNAV        float64 `yaml:"current_nav"`
	OneYearReturn     float64 `yaml:"one_year_return"`
	ThreeYearReturn   float64 `yaml:"three_year_return"`
	FiveYearReturn    float64 `yaml:"five_year_return"`
	RiskLevel         string  `yaml:"risk_level"`
	FundManager       string  `yaml:"fund_manager"`
	InceptionDate     string  `yaml:"inception_date"`
	TotalAssets       float64 `yaml:"total_assets"`
	ExpenseRatio      float64 `yaml:"expense_ratio"`
	Benchmark         string  `yaml:"benchmark"`
}

type fundsFile struct {
	Funds []fundEntry `yaml:"funds"`
}

// LoadFundsFile reads and validates a YAML fund catalog.
func LoadFundsFile(fundsPath string) ([]models.Fund, error) {
	if !filepath.IsAbs(fundsPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		fundsPath = filepath.Join(wd, fundsPath)
	}

	data, err := os.ReadFile(fundsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", fundsPath, err)
	}

	var file fundsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", fundsPath, err)
	}

	funds := make([]models.Fund, 0, len(file.Funds))
	for i, entry := range file.Funds {
		if entry.Id == "" {
			return nil, fmt.Errorf("fund at index %d missing id", i)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("fund at index %d missing name", i)
		}
		if entry.CurrentNAV <= 0 {
			return nil, fmt.Errorf("fund %s has non-positive NAV", entry.Id)
		}
		if entry.RiskLevel != models.RiskLow && entry.RiskLevel != models.RiskMedium && entry.RiskLevel != models.RiskHigh {
			return nil, fmt.Errorf("fund %s has unknown risk level %q", entry.Id, entry.RiskLevel)
		}

		inception := time.Time{}
		if entry.InceptionDate != "" {
			inception, err = time.Parse("2006-01-02", entry.InceptionDate)
			if err != nil {
				return nil, fmt.Errorf("fund %s has invalid inception date %q: %w", entry.Id, entry.InceptionDate, err)
			}
		}

		funds = append(funds, models.Fund{
			Id:                entry.Id,
			Name:              entry.Name,
			Category:          entry.Category,
			Description:       entry.Description,
			MinimumInvestment: decimal.NewFromFloat(entry.MinimumInvestment),
			CurrentNAV:        decimal.NewFromFloat(entry.CurrentNAV),
			OneYearReturn:     decimal.NewFromFloat(entry.OneYearReturn),
			ThreeYearReturn:   decimal.NewFromFloat(entry.ThreeYearReturn),
			FiveYearReturn:    decimal.NewFromFloat(entry.FiveYearReturn),
			RiskLevel:         entry.RiskLevel,
			FundManager:       entry.FundManager,
			InceptionDate:     inception,
			TotalAssets:       decimal.NewFromFloat(entry.TotalAssets),
			ExpenseRatio:      decimal.NewFromFloat(entry.ExpenseRatio),
			Benchmark:         entry.Benchmark,
		})
	}

	return funds, nil
}

// Seed writes the catalog only when no funds are stored yet. Returns true
// when seeding actually happened.
func Seed(ctx context.Context, repo *repository.Repository, funds []models.Fund) (bool, error) {
	if existing := repo.GetFunds(ctx); len(existing) > 0 {
		zap.L().Info("Fund catalog already seeded", zap.Int("count", len(existing)))
		return false, nil
	}

	if err := repo.SaveFunds(ctx, funds); err != nil {
		return false, fmt.Errorf("unable to seed fund catalog: %w", err)
	}

	zap.L().Info("Fund catalog seeded", zap.Int("count", len(funds)))
	return true, nil
}

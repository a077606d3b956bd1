/**
 * Copyright 2025-present FundTrack Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Sentinel errors for invest/redeem operations.
var (
	ErrFundNotFound       = errors.New("fund not found")
	ErrBelowMinimum       = errors.New("amount below fund minimum investment")
	ErrInvestmentNotFound = errors.New("investment not found")
	ErrNotRedeemable      = errors.New("investment is not redeemable")
	ErrInvalidUnits       = errors.New("invalid redemption units")
)

// Service orchestrates simulated investments, redemptions and cached
// portfolio valuation over the repository.
type Service struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewService(repo *repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Invest purchases units of a fund at its current NAV. It writes an
// investment record and a matching SUBSCRIPTION ledger entry. Units are
// fixed at amount / NAV for the lifetime of the investment.
func (s *Service) Invest(ctx context.Context, userId, fundId string, amount decimal.Decimal) (*models.Investment, *models.Transaction, error) {
	fund, err := s.findFund(ctx, fundId)
	if err != nil {
		return nil, nil, err
	}

	if amount.LessThan(fund.MinimumInvestment) {
		return nil, nil, fmt.Errorf("%w: minimum is %s", ErrBelowMinimum, fund.MinimumInvestment.String())
	}

	now := s.now()
	units := amount.Div(fund.CurrentNAV)

	investment := models.Investment{
		Id:           uuid.New().String(),
		UserId:       userId,
		FundId:       fund.Id,
		Amount:       amount,
		Units:        units,
		PurchaseNAV:  fund.CurrentNAV,
		PurchaseDate: now,
		CurrentValue: amount,
		Status:       models.InvestmentActive,
	}

	transaction := models.Transaction{
		Id:        uuid.New().String(),
		UserId:    userId,
		FundId:    fund.Id,
		Type:      models.TransactionSubscription,
		Amount:    amount,
		Units:     units,
		NAV:       fund.CurrentNAV,
		Date:      now,
		Status:    models.TransactionCompleted,
		Reference: newReference(),
	}

	if err := s.repo.SaveInvestment(ctx, investment); err != nil {
		return nil, nil, fmt.Errorf("unable to record investment: %w", err)
	}
	if err := s.repo.SaveTransaction(ctx, transaction); err != nil {
		return nil, nil, fmt.Errorf("unable to record transaction: %w", err)
	}

	zap.L().Info("Investment placed",
		zap.String("user_id", userId),
		zap.String("fund", fund.Name),
		zap.String("amount", amount.String()),
		zap.String("units", units.StringFixed(4)),
		zap.String("reference", transaction.Reference))

	return &investment, &transaction, nil
}

// Redeem sells units of an active investment at the fund's current NAV.
// Zero units means a full redemption. Units on the investment itself never
// change; a full redemption flips the status to Redeemed, a partial one to
// Partial, and the redeemed units are carried by the ledger entry.
func (s *Service) Redeem(ctx context.Context, userId, investmentId string, units decimal.Decimal) (*models.Transaction, error) {
	var investment *models.Investment
	for _, inv := range s.repo.GetInvestments(ctx) {
		if inv.Id == investmentId && inv.UserId == userId {
			investment = &inv
			break
		}
	}
	if investment == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvestmentNotFound, investmentId)
	}
	if investment.Status == models.InvestmentRedeemed {
		return nil, fmt.Errorf("%w: already redeemed", ErrNotRedeemable)
	}

	if units.IsZero() {
		units = investment.Units
	}
	if units.IsNegative() || units.GreaterThan(investment.Units) {
		return nil, fmt.Errorf("%w: %s of %s held", ErrInvalidUnits, units.String(), investment.Units.String())
	}

	// Price at the current NAV; fall back to the purchase NAV when the
	// fund reference dangles.
	nav := investment.PurchaseNAV
	if fund, err := s.findFund(ctx, investment.FundId); err == nil {
		nav = fund.CurrentNAV
	}

	status := models.InvestmentPartial
	if units.Equal(investment.Units) {
		status = models.InvestmentRedeemed
	}

	transaction := models.Transaction{
		Id:        uuid.New().String(),
		UserId:    userId,
		FundId:    investment.FundId,
		Type:      models.TransactionRedemption,
		Amount:    units.Mul(nav),
		Units:     units,
		NAV:       nav,
		Date:      s.now(),
		Status:    models.TransactionCompleted,
		Reference: newReference(),
	}

	if err := s.repo.UpdateInvestment(ctx, investmentId, func(inv *models.Investment) {
		inv.Status = status
	}); err != nil {
		return nil, fmt.Errorf("unable to update investment: %w", err)
	}
	if err := s.repo.SaveTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("unable to record redemption: %w", err)
	}

	zap.L().Info("Redemption processed",
		zap.String("user_id", userId),
		zap.String("investment_id", investmentId),
		zap.String("units", units.StringFixed(4)),
		zap.String("amount", transaction.Amount.String()),
		zap.String("new_status", status))

	return &transaction, nil
}

// Summary returns the portfolio valuation for a user, served from the
// persisted cache while fresh and recomputed otherwise. A failed cache
// write only costs the memoization, so it is logged and not propagated.
func (s *Service) Summary(ctx context.Context, userId string) (*models.PortfolioSummary, error) {
	if cached := s.repo.GetPortfolioCache(ctx); cached != nil {
		zap.L().Debug("Portfolio summary served from cache")
		return cached, nil
	}

	investments := make([]models.Investment, 0)
	for _, inv := range s.repo.GetInvestments(ctx) {
		if inv.UserId == userId {
			investments = append(investments, inv)
		}
	}

	summary := ComputeSummary(investments, s.repo.GetFunds(ctx))

	if err := s.repo.SavePortfolioCache(ctx, summary); err != nil {
		zap.L().Warn("Failed to cache portfolio summary", zap.Error(err))
	}

	return &summary, nil
}

func (s *Service) findFund(ctx context.Context, fundId string) (*models.Fund, error) {
	for _, fund := range s.repo.GetFunds(ctx) {
		if fund.Id == fundId {
			return &fund, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFundNotFound, fundId)
}

// newReference builds a human-quotable ledger reference like TXN1A2B3C4D.
func newReference() string {
	id := uuid.New().String()
	return "TXN" + strings.ToUpper(id[:8])
}

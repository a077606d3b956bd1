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

package main

import (
	"context"
	"flag"
	"fmt"

	"fundtrack-go/internal/common"
	"fundtrack-go/internal/config"
	"fundtrack-go/internal/models"
	"fundtrack-go/internal/repository"

	"go.uber.org/zap"
)

func fundNames(ctx context.Context, repo *repository.Repository) map[string]string {
	names := make(map[string]string)
	for _, fund := range repo.GetFunds(ctx) {
		names[fund.Id] = fund.Name
	}
	return names
}

func printHolding(investment models.Investment, fundName string, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	detail := common.BoxDetailPrefix(isLast)
	gainLoss := investment.CurrentValue.Sub(investment.Amount)

	fmt.Printf("%s %s\n", symbol, fundName)
	fmt.Printf("%s   Invested: %s | Current: %s | P&L: %s\n",
		detail,
		common.FormatCurrency(investment.Amount),
		common.FormatCurrency(investment.CurrentValue),
		common.FormatCurrency(gainLoss))
	fmt.Printf("%s   Units: %s @ %s on %s | Id: %s\n",
		detail,
		investment.Units.StringFixed(4),
		common.FormatCurrency(investment.PurchaseNAV),
		investment.PurchaseDate.Format("2006-01-02"),
		investment.Id)
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	state := services.Auth.CheckAuthStatus(ctx)
	if !state.Authenticated {
		zap.L().Fatal("No active session, log in first")
	}

	summary, err := services.Portfolio.Summary(ctx, state.User.Id)
	if err != nil {
		zap.L().Fatal("Failed to compute portfolio summary", zap.Error(err))
	}

	common.PrintHeader(fmt.Sprintf("PORTFOLIO — %s", state.User.FullName), common.DefaultWidth)

	fmt.Printf("Total Value:    %s\n", common.FormatCurrency(summary.TotalValue))
	fmt.Printf("Total Invested: %s\n", common.FormatCurrency(summary.TotalInvested))
	fmt.Printf("Gain/Loss:      %s (%s)\n",
		common.FormatCurrency(summary.TotalGainLoss),
		common.FormatPercent(summary.TotalGainLossPercentage))
	common.PrintBoxSeparator(78)

	if len(summary.Investments) == 0 {
		fmt.Println("No active holdings.")
		return
	}

	names := fundNames(ctx, services.Repo)
	for i, investment := range summary.Investments {
		name := names[investment.FundId]
		if name == "" {
			name = "Unknown Fund"
		}
		printHolding(investment, name, i == len(summary.Investments)-1)
	}

	common.PrintFooter(fmt.Sprintf("SUMMARY: %d active holdings", len(summary.Investments)), common.DefaultWidth)
}

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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	fundFlag := flag.String("fund", "", "Fund id to invest in (required)")
	amountFlag := flag.String("amount", "", "Amount in rupees (required)")
	flag.Parse()

	if *fundFlag == "" || *amountFlag == "" {
		zap.L().Fatal("Both -fund and -amount are required")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("amount", *amountFlag), zap.Error(err))
	}

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

	investment, transaction, err := services.Portfolio.Invest(ctx, state.User.Id, *fundFlag, amount)
	if err != nil {
		zap.L().Fatal("Investment failed", zap.Error(err))
	}

	common.PrintHeader("INVESTMENT CONFIRMED", common.DefaultWidth)
	fmt.Printf("│  Amount:    %s\n", common.FormatCurrency(investment.Amount))
	fmt.Printf("│  Units:     %s\n", investment.Units.StringFixed(4))
	fmt.Printf("│  NAV:       %s\n", common.FormatCurrency(investment.PurchaseNAV))
	fmt.Printf("│  Reference: %s\n", transaction.Reference)
	fmt.Printf("└  Holding:   %s\n", investment.Id)

	zap.L().Info("Investment recorded",
		zap.String("investment_id", investment.Id),
		zap.String("fund_id", investment.FundId),
		zap.String("amount", investment.Amount.String()),
		zap.String("reference", transaction.Reference))
}

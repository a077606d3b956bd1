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

	investmentFlag := flag.String("investment", "", "Holding id to redeem from (required)")
	unitsFlag := flag.String("units", "0", "Units to redeem (0 redeems the full holding)")
	flag.Parse()

	if *investmentFlag == "" {
		zap.L().Fatal("-investment is required")
	}

	units, err := decimal.NewFromString(*unitsFlag)
	if err != nil {
		zap.L().Fatal("Invalid units", zap.String("units", *unitsFlag), zap.Error(err))
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

	transaction, err := services.Portfolio.Redeem(ctx, state.User.Id, *investmentFlag, units)
	if err != nil {
		zap.L().Fatal("Redemption failed", zap.Error(err))
	}

	common.PrintHeader("REDEMPTION CONFIRMED", common.DefaultWidth)
	fmt.Printf("│  Units:     %s\n", transaction.Units.StringFixed(4))
	fmt.Printf("│  NAV:       %s\n", common.FormatCurrency(transaction.NAV))
	fmt.Printf("│  Proceeds:  %s\n", common.FormatCurrency(transaction.Amount))
	fmt.Printf("└  Reference: %s\n", transaction.Reference)

	zap.L().Info("Redemption recorded",
		zap.String("investment_id", *investmentFlag),
		zap.String("units", transaction.Units.String()),
		zap.String("proceeds", transaction.Amount.String()),
		zap.String("reference", transaction.Reference))
}

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

	"go.uber.org/zap"
)

func printTransaction(transaction models.Transaction, fundName string, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	detail := common.BoxDetailPrefix(isLast)

	fmt.Printf("%s %s  %-12s %s\n",
		symbol,
		transaction.Date.Format("2006-01-02 15:04"),
		transaction.Type,
		fundName)
	fmt.Printf("%s   %s (%s units @ %s) | %s | %s\n",
		detail,
		common.FormatCurrency(transaction.Amount),
		transaction.Units.StringFixed(4),
		common.FormatCurrency(transaction.NAV),
		transaction.Status,
		transaction.Reference)
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	limitFlag := flag.Int("limit", 0, "Show only the most recent N entries (0 shows all)")
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

	transactions := services.Repo.GetTransactions(ctx)

	mine := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.UserId == state.User.Id {
			mine = append(mine, transaction)
		}
	}

	// Ledger is append-only, so the newest entries are at the tail.
	if *limitFlag > 0 && len(mine) > *limitFlag {
		mine = mine[len(mine)-*limitFlag:]
	}

	common.PrintHeader("TRANSACTION HISTORY", common.DefaultWidth)

	if len(mine) == 0 {
		fmt.Println("No transactions recorded.")
		return
	}

	names := make(map[string]string)
	for _, fund := range services.Repo.GetFunds(ctx) {
		names[fund.Id] = fund.Name
	}

	for i, transaction := range mine {
		name := names[transaction.FundId]
		if name == "" {
			name = "Unknown Fund"
		}
		printTransaction(transaction, name, i == len(mine)-1)
	}

	common.PrintFooter(fmt.Sprintf("SUMMARY: %d transactions", len(mine)), common.DefaultWidth)
}

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

	"fundtrack-go/internal/catalog"
	"fundtrack-go/internal/common"
	"fundtrack-go/internal/config"
	"fundtrack-go/internal/models"

	"go.uber.org/zap"
)

func printFund(fund models.Fund, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	detail := common.BoxDetailPrefix(isLast)

	fmt.Printf("%s %s (%s)\n", symbol, fund.Name, fund.Category)
	fmt.Printf("%s   NAV: %s | Min: %s | Risk: %s\n",
		detail,
		common.FormatCurrency(fund.CurrentNAV),
		common.FormatCurrency(fund.MinimumInvestment),
		fund.RiskLevel)
	fmt.Printf("%s   Returns: 1y %s | 3y %s | 5y %s\n",
		detail,
		common.FormatPercent(fund.OneYearReturn),
		common.FormatPercent(fund.ThreeYearReturn),
		common.FormatPercent(fund.FiveYearReturn))
	fmt.Printf("%s   Manager: %s | AUM: %s | Id: %s\n",
		detail,
		fund.FundManager,
		common.FormatLargeNumber(fund.TotalAssets),
		fund.Id)
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	queryFlag := flag.String("query", "", "Substring match on name, description or manager")
	categoryFlag := flag.String("category", "", "Filter by exact category")
	riskFlag := flag.String("risk", "", "Filter by risk level (Low, Medium, High)")
	sortFlag := flag.String("sort", "", "Sort by trailing return period (1y, 3y, 5y)")
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

	funds := services.Repo.SearchFunds(ctx, *queryFlag, *categoryFlag)
	funds = catalog.FilterByRisk(funds, *riskFlag)
	if *sortFlag != "" {
		funds = catalog.SortByPerformance(funds, *sortFlag)
	}

	common.PrintHeader("FUND CATALOG", common.DefaultWidth)

	if len(funds) == 0 {
		fmt.Println("No funds match the given filters. Run the setup command to seed the catalog.")
		return
	}

	for i, fund := range funds {
		printFund(fund, i == len(funds)-1)
	}

	common.PrintFooter(fmt.Sprintf("SUMMARY: %d funds listed", len(funds)), common.DefaultWidth)
}

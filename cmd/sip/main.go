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
	"flag"
	"fmt"

	"fundtrack-go/internal/common"
	"fundtrack-go/internal/portfolio"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	amountFlag := flag.String("amount", "", "Monthly contribution in rupees (required)")
	returnFlag := flag.String("return", "12", "Expected annual return percentage")
	yearsFlag := flag.Int("years", 10, "Investment horizon in years")
	flag.Parse()

	if *amountFlag == "" {
		zap.L().Fatal("-amount is required")
	}

	monthlyAmount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("amount", *amountFlag), zap.Error(err))
	}
	if !monthlyAmount.IsPositive() {
		zap.L().Fatal("Amount must be positive", zap.String("amount", *amountFlag))
	}

	annualReturn, err := decimal.NewFromString(*returnFlag)
	if err != nil {
		zap.L().Fatal("Invalid return percentage", zap.String("return", *returnFlag), zap.Error(err))
	}

	if *yearsFlag <= 0 {
		zap.L().Fatal("Years must be positive", zap.Int("years", *yearsFlag))
	}

	projection := portfolio.CalculateSIP(monthlyAmount, annualReturn, *yearsFlag)

	common.PrintHeader("SIP PROJECTION", common.DefaultWidth)
	fmt.Printf("│  Monthly:        %s over %d years at %s%% p.a.\n",
		common.FormatCurrency(monthlyAmount), *yearsFlag, annualReturn.String())
	fmt.Printf("│  Total Invested: %s\n", common.FormatLargeNumber(projection.TotalInvested))
	fmt.Printf("│  Maturity Value: %s\n", common.FormatLargeNumber(projection.MaturityValue))
	fmt.Printf("└  Total Gain:     %s\n", common.FormatLargeNumber(projection.TotalGain))
}

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

	"fundtrack-go/internal/catalog"
	"fundtrack-go/internal/common"
	"fundtrack-go/internal/config"
	"fundtrack-go/internal/models"

	"go.uber.org/zap"
)

func loadCatalog(fundsFile string) ([]models.Fund, error) {
	if fundsFile == "" {
		zap.L().Info("No funds file configured, using built-in catalog")
		return catalog.DefaultFunds(), nil
	}

	zap.L().Info("Loading fund catalog", zap.String("file", fundsFile))
	return catalog.LoadFundsFile(fundsFile)
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	fundsFileFlag := flag.String("funds-file", "", "Path to a YAML fund catalog (overrides FUNDS_FILE)")
	forceFlag := flag.Bool("force", false, "Replace the stored catalog even if one exists")
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

	fundsFile := cfg.Catalog.FundsFile
	if *fundsFileFlag != "" {
		fundsFile = *fundsFileFlag
	}

	funds, err := loadCatalog(fundsFile)
	if err != nil {
		zap.L().Fatal("Failed to load fund catalog", zap.Error(err))
	}

	if *forceFlag {
		if err := services.Repo.SaveFunds(ctx, funds); err != nil {
			zap.L().Fatal("Failed to replace fund catalog", zap.Error(err))
		}
		zap.L().Info("Fund catalog replaced", zap.Int("count", len(funds)))
		return
	}

	seeded, err := catalog.Seed(ctx, services.Repo, funds)
	if err != nil {
		zap.L().Fatal("Failed to seed fund catalog", zap.Error(err))
	}

	if seeded {
		zap.L().Info("Setup complete", zap.Int("funds", len(funds)))
	} else {
		zap.L().Info("Setup complete, catalog already present")
	}
}

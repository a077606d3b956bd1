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
	"os"

	"fundtrack-go/internal/common"
	"fundtrack-go/internal/config"

	"go.uber.org/zap"
)

func runExport(ctx context.Context, services *common.Services, path string) {
	blob, err := services.Repo.ExportData(ctx)
	if err != nil {
		zap.L().Fatal("Export failed", zap.Error(err))
	}

	if err := os.WriteFile(path, []byte(blob), 0o600); err != nil {
		zap.L().Fatal("Failed to write backup file", zap.String("path", path), zap.Error(err))
	}

	fmt.Printf("Backup written to %s (%d bytes)\n", path, len(blob))
	zap.L().Info("Backup exported", zap.String("path", path), zap.Int("bytes", len(blob)))
}

func runImport(ctx context.Context, services *common.Services, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		zap.L().Fatal("Failed to read backup file", zap.String("path", path), zap.Error(err))
	}

	if err := services.Repo.ImportData(ctx, string(data)); err != nil {
		zap.L().Fatal("Import failed", zap.Error(err))
	}

	fmt.Printf("Backup restored from %s\n", path)
	zap.L().Info("Backup imported", zap.String("path", path))
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	exportFlag := flag.String("export", "", "Write all stored data to the given file")
	importFlag := flag.String("import", "", "Restore stored data from the given file")
	flag.Parse()

	if (*exportFlag == "") == (*importFlag == "") {
		zap.L().Fatal("Exactly one of -export or -import is required")
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

	if *exportFlag != "" {
		runExport(ctx, services, *exportFlag)
		return
	}

	runImport(ctx, services, *importFlag)
}

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
	"fmt"

	"fundtrack-go/internal/common"
	"fundtrack-go/internal/config"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

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
		fmt.Println("No active session.")
		return
	}

	email := ""
	if state.User != nil {
		email = state.User.Email
	}

	if err := services.Auth.Logout(ctx); err != nil {
		zap.L().Fatal("Logout failed", zap.Error(err))
	}

	fmt.Println("Logged out. All local data cleared.")
	zap.L().Info("Session ended", zap.String("email", email))
}

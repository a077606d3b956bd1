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

	"fundtrack-go/internal/auth"
	"fundtrack-go/internal/common"
	"fundtrack-go/internal/config"
	"fundtrack-go/internal/models"

	"go.uber.org/zap"
)

func printUser(user *models.User) {
	fmt.Printf("│  Name:  %s\n", user.FullName)
	fmt.Printf("│  Email: %s\n", user.Email)
	fmt.Printf("│  Phone: %s\n", user.PhoneNumber)
	fmt.Printf("└  Id:    %s\n", user.Id)
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	emailFlag := flag.String("email", "", "Account email address (required)")
	passwordFlag := flag.String("password", "", "Account password (required)")
	registerFlag := flag.Bool("register", false, "Create a new account instead of logging in")
	nameFlag := flag.String("name", "", "Full name (registration only)")
	phoneFlag := flag.String("phone", "", "Phone number (registration only)")
	flag.Parse()

	if *emailFlag == "" || *passwordFlag == "" {
		zap.L().Fatal("Both -email and -password are required")
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

	var user *models.User
	if *registerFlag {
		user, err = services.Auth.Register(ctx, auth.RegisterParams{
			Email:       *emailFlag,
			Password:    *passwordFlag,
			FullName:    *nameFlag,
			PhoneNumber: *phoneFlag,
		})
		if err != nil {
			zap.L().Fatal("Registration failed", zap.Error(err))
		}
		common.PrintHeader("ACCOUNT CREATED", common.DefaultWidth)
	} else {
		user, err = services.Auth.Login(ctx, *emailFlag, *passwordFlag)
		if err != nil {
			zap.L().Fatal("Login failed", zap.Error(err))
		}
		common.PrintHeader("LOGGED IN", common.DefaultWidth)
	}

	printUser(user)

	zap.L().Info("Session established",
		zap.String("user_id", user.Id),
		zap.String("email", user.Email))
}

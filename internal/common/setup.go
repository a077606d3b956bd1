package common

import (
	"context"
	"log"
	"strings"

	"fundtrack-go/internal/auth"
	"fundtrack-go/internal/database"
	"fundtrack-go/internal/models"
	"fundtrack-go/internal/portfolio"
	"fundtrack-go/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Environment variables can also be set via shell export, so a missing
	// .env file is not an error.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	} else {
		log.Println("✓ Loaded environment variables from .env file")
	}
}

type Services struct {
	DbService *database.Service
	Repo      *repository.Repository
	Portfolio *portfolio.Service
	Auth      *auth.Manager
}

func InitializeLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

func InitializeServices(ctx context.Context, cfg *models.Config) (*Services, error) {
	dbService, err := database.NewService(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	repo := repository.New(dbService, cfg)

	var verifier auth.CredentialVerifier
	switch cfg.Auth.Mode {
	case "local":
		zap.L().Info("Using local credential verification")
		verifier = auth.NewBcryptVerifier(dbService)
	default:
		verifier = auth.AcceptAllVerifier{}
	}

	return &Services{
		DbService: dbService,
		Repo:      repo,
		Portfolio: portfolio.NewService(repo),
		Auth:      auth.NewManager(repo, verifier),
	}, nil
}

func (cs *Services) Close() {
	if cs.DbService != nil {
		cs.DbService.Close()
	}
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}

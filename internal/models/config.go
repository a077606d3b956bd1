package models

import "time"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	Session  SessionConfig
	Cache    CacheConfig
	Catalog  CatalogConfig
	Auth     AuthConfig
}

// DatabaseConfig holds SQLite connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// StorageConfig holds key-value store operation settings
type StorageConfig struct {
	// OpTimeout bounds every individual storage operation. An expired
	// deadline surfaces as a hard storage error to the caller.
	OpTimeout time.Duration
}

// SessionConfig holds persisted-session settings
type SessionConfig struct {
	TTL time.Duration
}

// CacheConfig holds portfolio valuation cache settings
type CacheConfig struct {
	PortfolioTTL time.Duration
}

// CatalogConfig holds fund catalog settings
type CatalogConfig struct {
	// FundsFile is an optional YAML catalog. When empty, the built-in
	// sample catalog is used for first-launch seeding.
	FundsFile string
}

// AuthConfig holds credential verification settings
type AuthConfig struct {
	// Mode selects the credential verifier: "open" accepts any well-formed
	// email/password pair, "local" enrolls and checks a bcrypt hash.
	Mode string
}

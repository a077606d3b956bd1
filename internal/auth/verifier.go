package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fundtrack-go/internal/store"
	"fundtrack-go/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors for credential verification.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// CredentialVerifier decouples credential checks from the session state
// machine, so a real verifier can replace the simulated one without
// touching the machine.
type CredentialVerifier interface {
	// Enroll records credentials at registration time.
	Enroll(ctx context.Context, email, password string) error
	// Verify checks credentials at login time.
	Verify(ctx context.Context, email, password string) error
}

// AcceptAllVerifier reproduces the demo build: any well-formed email and
// non-empty password is accepted, nothing is stored.
type AcceptAllVerifier struct{}

func (AcceptAllVerifier) Enroll(_ context.Context, email, password string) error {
	return checkFormat(email, password)
}

func (AcceptAllVerifier) Verify(_ context.Context, email, password string) error {
	return checkFormat(email, password)
}

func checkFormat(email, password string) error {
	if !validation.ValidEmail(email) || password == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier keeps a bcrypt hash in the key-value store. Registration
// enrolls the hash, login compares against it. This is the pluggable real
// verifier; the state machine is identical either way.
type BcryptVerifier struct {
	store store.Store
}

func NewBcryptVerifier(st store.Store) *BcryptVerifier {
	return &BcryptVerifier{store: st}
}

type storedCredentials struct {
	Email string `json:"email"`
	Hash  string `json:"hash"`
}

func (v *BcryptVerifier) Enroll(ctx context.Context, email, password string) error {
	if !validation.ValidEmail(email) {
		return ErrInvalidCredentials
	}
	if !validation.ValidPassword(password) {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("unable to hash password: %w", err)
	}

	data, err := json.Marshal(storedCredentials{Email: email, Hash: string(hash)})
	if err != nil {
		return fmt.Errorf("unable to encode credentials: %w", err)
	}

	if err := v.store.Set(ctx, store.KeyCredentials, string(data)); err != nil {
		return fmt.Errorf("unable to store credentials: %w", err)
	}
	return nil
}

func (v *BcryptVerifier) Verify(ctx context.Context, email, password string) error {
	raw, err := v.store.Get(ctx, store.KeyCredentials)
	if err != nil {
		return ErrInvalidCredentials
	}

	var creds storedCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return ErrInvalidCredentials
	}

	if creds.Email != email {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.Hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

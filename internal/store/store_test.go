package store

import (
	"testing"
)

func TestAllKeysCoversKeyspace(t *testing.T) {
	keys := AllKeys()

	want := []string{
		KeyUserSession,
		KeyUserProfile,
		KeyUserSettings,
		KeyCredentials,
		KeyInvestments,
		KeyTransactions,
		KeyFundsData,
		KeyPortfolioCache,
	}

	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Errorf("Duplicate key in AllKeys: %s", k)
		}
		seen[k] = true
	}
	for _, k := range want {
		if !seen[k] {
			t.Errorf("AllKeys missing %s", k)
		}
	}
}

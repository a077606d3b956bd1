package store

// Persisted keyspace. Collection values are JSON arrays of entity objects,
// scalar values are JSON objects. Key names match the original mobile build
// so exported backups stay interchangeable.
const (
	KeyUserSession    = "@user_session"
	KeyUserProfile    = "@user_profile"
	KeyUserSettings   = "@user_settings"
	KeyCredentials    = "@user_credentials"
	KeyInvestments    = "@investments"
	KeyTransactions   = "@transactions"
	KeyFundsData      = "@funds_data"
	KeyPortfolioCache = "@portfolio_cache"
)

// AllKeys returns every known storage key. Logout wipes all of them.
func AllKeys() []string {
	return []string{
		KeyUserSession,
		KeyUserProfile,
		KeyUserSettings,
		KeyCredentials,
		KeyInvestments,
		KeyTransactions,
		KeyFundsData,
		KeyPortfolioCache,
	}
}

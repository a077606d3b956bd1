package models

import "time"

// User is the single resident profile on the device. It is created at
// registration or login and destroyed on logout (full data wipe).
type User struct {
	Id          string       `json:"id"`
	Email       string       `json:"email"`
	FullName    string       `json:"fullName"`
	PhoneNumber string       `json:"phoneNumber"`
	CreatedAt   time.Time    `json:"createdAt"`
	Settings    UserSettings `json:"settings"`
}

// UserSettings is embedded in User and has no independent lifecycle.
type UserSettings struct {
	Theme            string               `json:"theme"`
	Language         string               `json:"language"`
	Notifications    NotificationSettings `json:"notifications"`
	BiometricEnabled bool                 `json:"biometricEnabled"`
}

// NotificationSettings holds the per-channel notification toggles.
type NotificationSettings struct {
	TransactionAlerts  bool `json:"transactionAlerts"`
	PerformanceUpdates bool `json:"performanceUpdates"`
	MarketNews         bool `json:"marketNews"`
	PushNotifications  bool `json:"pushNotifications"`
}

// DefaultSettings returns the settings applied to a freshly created user.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:    "light",
		Language: "en",
		Notifications: NotificationSettings{
			TransactionAlerts:  true,
			PerformanceUpdates: true,
			MarketNews:         false,
			PushNotifications:  true,
		},
		BiometricEnabled: false,
	}
}

// Session gates auto-login at app start. Timestamp is epoch milliseconds so
// age arithmetic stays numeric regardless of how dates serialize.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserId          string `json:"userId"`
	Timestamp       int64  `json:"timestamp"`
}

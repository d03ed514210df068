package repositories

import "context"

// SettingsRepository persists simple key/value application settings, such as
// the selected display currency.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value, updaterUserID string) error
}

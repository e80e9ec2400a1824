package ports

import "github.com/AntonioJCosta/mostactive/internal/core/domain/settings"

// ConfigProvider defines the interface for sourcing user settings, like a configuration file.
type ConfigProvider interface {
	// GetSettings loads the configured settings. Fields that are not configured are left empty.
	GetSettings() (settings.Settings, error)

	// GetConfigPath returns the location the settings are read from.
	GetConfigPath() string
}

package testutil

import (
	"github.com/AntonioJCosta/mostactive/internal/core/domain/settings"
	"github.com/AntonioJCosta/mostactive/internal/core/ports"
)

// MockConfigProvider is a mock implementation of ports.ConfigProvider.
type MockConfigProvider struct {
	GetSettingsFunc   func() (settings.Settings, error)
	GetConfigPathFunc func() string
}

// GetSettings mocks the GetSettings method.
func (m *MockConfigProvider) GetSettings() (settings.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return settings.Settings{}, nil // Default behavior: nothing configured
}

// GetConfigPath mocks the GetConfigPath method.
func (m *MockConfigProvider) GetConfigPath() string {
	if m.GetConfigPathFunc != nil {
		return m.GetConfigPathFunc()
	}
	return ""
}

var _ ports.ConfigProvider = (*MockConfigProvider)(nil)

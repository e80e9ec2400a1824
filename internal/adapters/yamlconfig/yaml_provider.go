package yamlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/AntonioJCosta/mostactive/internal/core/domain/settings"
	"github.com/AntonioJCosta/mostactive/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const configDir = ".mostactive"
const configFilename = "config.yaml"

// YAMLProvider implements the ConfigProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML settings file; an empty path selects DefaultConfigPath.
func NewYAMLProvider(filePath string) (ports.ConfigProvider, error) {
	if filePath == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		filePath = defaultPath
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultConfigPath returns $HOME/.mostactive/config.yaml.
func DefaultConfigPath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, configDir, configFilename), nil
}

// GetSettings reads and parses settings from the configured YAML file.
// If the file does not exist or is empty, it returns empty settings and no error.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	var cfg settings.Settings

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file means nothing is configured.
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments or "---" decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return settings.Settings{}, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal config from %s: %w", p.filePath, err)
	}

	return cfg, nil
}

func (p *YAMLProvider) GetConfigPath() string {
	return p.filePath
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stockroute/stockroute/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = ".stockroute.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .stockroute.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .stockroute.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base
	if override.CommitPolicy != "" {
		result.CommitPolicy = override.CommitPolicy
	}
	if override.Strict != nil {
		result.Strict = override.Strict
	}
	if override.InventoryFile != "" {
		result.InventoryFile = override.InventoryFile
	}
	return result
}

// Render produces the YAML text written by `stockroute init`.
func Render(cfg domain.ProjectConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

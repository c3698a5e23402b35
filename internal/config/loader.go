package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPool loads pool configuration.
// Search order: customPath -> ~/.billiards/configs/pool.yaml -> ./configs/pool.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// The result is validated; an explicit custom file that is unreadable or invalid is an error.
func LoadPool(customPath string) (PoolConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PoolConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parsePool(data)
		if err != nil {
			return PoolConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return PoolConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("pool.yaml"), filepath.Join("configs", "pool.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parsePool(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePool(defaultPoolYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPoolConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePool decodes YAML on top of the hardcoded defaults.
func parsePool(data []byte) (PoolConfig, error) {
	cfg := DefaultPoolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PoolConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".billiards", "configs", filename)
}

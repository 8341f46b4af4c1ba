package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoids loads the asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/roids.yaml -> ./configs/roids.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is validated before it is returned.
func LoadRoids(customPath string) (RoidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoidsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseRoids(data)
		if err != nil {
			return RoidsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("roids.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRoids(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/roids.yaml"); err == nil {
		if cfg, err := ParseRoids(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRoids(defaultRoidsYAML)
	if err != nil {
		return DefaultRoidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRoids decodes YAML over DefaultRoidsConfig and validates the result.
func ParseRoids(data []byte) (RoidsConfig, error) {
	cfg := DefaultRoidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoidsConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RoidsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

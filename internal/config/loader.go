package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "pongblast.yaml"

// Load loads the PongBlast configuration.
// Search order: customPath -> ~/.pongblast/configs/pongblast.yaml ->
// ./configs/pongblast.yaml -> embedded default -> hardcoded default.
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. An explicit customPath must exist, parse and validate;
// the implicit locations are skipped when unreadable or invalid.
func Load(customPath string) (PongBlastConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongBlastConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongBlastConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongBlastYAML)
	if err != nil {
		return DefaultPongBlastConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (PongBlastConfig, error) {
	cfg := DefaultPongBlastConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongBlastConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PongBlastConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pongblast", "configs", filename)
}

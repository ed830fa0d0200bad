// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for texedit.
// Usage: Load() reads texedit.json from the user config dir, creating
// it with defaults on first run. Bad values warn and fall back, they
// never abort the editor.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const configName = "texedit.json"

// Config stores configuration keys as JSON-compatible data.
type Config map[string]interface{}

// Load reads the user configuration, writing a default file when none
// exists. The returned Config is always usable; the error reports why
// the on-disk copy could not be read or created.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := defaultConfig()
		return cfg, fmt.Errorf("resolve config path: %w", err)
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return defaultConfig(), fmt.Errorf("read config %s: %w", path, err)
		}
		log.Printf("Config: %s not found, writing defaults", path)
		cfg := defaultConfig()
		if werr := writeConfig(path, cfg); werr != nil {
			return cfg, fmt.Errorf("write default config: %w", werr)
		}
		return cfg, nil
	}

	cfg := make(Config)
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: failed to parse %s: %v", path, err)
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.registerDefaults(defaultConfig())
	return cfg, nil
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texedit", configName), nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// registerDefaults fills in missing keys without overwriting existing ones.
func (c Config) registerDefaults(defaults Config) {
	for key, value := range defaults {
		if _, ok := c[key]; !ok {
			c[key] = value
		}
	}
}

// GetString retrieves a string value with a fallback.
func (c Config) GetString(key, defaultValue string) string {
	if val, ok := c[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
		log.Printf("Config: %q is not a string, using %q", key, defaultValue)
	}
	return defaultValue
}

// GetBool retrieves a boolean value with a fallback.
func (c Config) GetBool(key string, defaultValue bool) bool {
	if val, ok := c[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
		log.Printf("Config: %q is not a bool, using %v", key, defaultValue)
	}
	return defaultValue
}

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ConfigEnvVar names the config file for binaries without flags
const ConfigEnvVar = "DECIMAL_CONVERTER_CONFIG"

type Config struct {
	Port     int    `json:"port"`
	LogLevel string `json:"logLevel"`
	// empty means settings.DefaultPath()
	SettingsPath string `json:"settingsPath"`
	// "binary" (tape measure fractions) or "best"
	NearestFraction string `json:"nearestFraction"`
}

func DefaultConfig() Config {
	return Config{
		Port:            5001,
		LogLevel:        "info",
		NearestFraction: "binary",
	}
}

// LoadConfig reads path over the defaults. a missing file is fine,
// everything has a default; a broken one is not
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return &config, nil
	}
	f, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	err = json.Unmarshal(f, &config)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return &config, nil
}

func ConfigPathFromEnv() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	return "config.json"
}

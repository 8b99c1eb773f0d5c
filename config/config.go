package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tvfov/fov"
	"tvfov/log"
)

const (
	ConfigFileName = "config.json"

	// ConfigDirEnvVar overrides the config directory, mainly for tests.
	ConfigDirEnvVar = "TVFOV_CONFIG_DIR"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tvfov"), nil
}

// Config holds the values the calculator starts with. Changes made while the
// calculator runs are never written back.
type Config struct {
	// DefaultDistance is the initial viewing distance, in DefaultUnit.
	DefaultDistance float64 `json:"default_distance"`
	// DefaultDiagonal is the initial screen diagonal in inches.
	DefaultDiagonal float64 `json:"default_diagonal"`
	// DefaultUnit is "feet" or "cm".
	DefaultUnit fov.Unit `json:"default_unit"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultDistance: 8,
		DefaultDiagonal: 65,
		DefaultUnit:     fov.Feet,
	}
}

// Setup returns the viewing setup described by the defaults.
func (c *Config) Setup() fov.ViewingSetup {
	return fov.ViewingSetup{
		Distance:       c.DefaultDistance,
		DiagonalInches: c.DefaultDiagonal,
		Unit:           c.DefaultUnit,
	}
}

// normalize pulls defaults back into the range of the controls.
func (c *Config) normalize() {
	distance := fov.RangeFor(c.DefaultUnit).Clamp(c.DefaultDistance)
	if distance != c.DefaultDistance {
		log.WarningLog.Printf("default_distance %v out of range, using %v", c.DefaultDistance, distance)
		c.DefaultDistance = distance
	}
	diagonal := fov.DiagonalRange.Clamp(c.DefaultDiagonal)
	if diagonal != c.DefaultDiagonal {
		log.WarningLog.Printf("default_diagonal %v out of range, using %v", c.DefaultDiagonal, diagonal)
		c.DefaultDiagonal = diagonal
	}
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Fields missing from the file keep their defaults.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.normalize()
	return config
}

// saveConfig writes the configuration unless another process created the
// file first.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return NewFileLock(configDir).withLock(func() error {
		if _, err := os.Stat(configPath); err == nil {
			return nil
		}
		return os.WriteFile(configPath, data, 0644)
	})
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grue-labs/lantern/log"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lantern"), nil
}

// GetSubmissionsDir returns the directory where fetched submissions are stored.
func GetSubmissionsDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "submissions"), nil
}

// Config represents the application configuration
type Config struct {
	// DefaultGame is the game loaded when no -g flag is given.
	DefaultGame string `json:"default_game"`
	// DefaultSubmission is the submission run when no --agent flag is given.
	DefaultSubmission string `json:"default_submission"`
	// MaxMoves is the upper bound on the number of moves an agent may take in one run.
	MaxMoves int `json:"max_moves"`
	// ResultsDir is where run output files are written.
	ResultsDir string `json:"results_dir"`
	// Seed is the base seed for evaluation runs. 0 derives a stable seed from the game name.
	Seed int64 `json:"seed"`
	// RunnerCommand is the external runner invoked for external submission runs.
	RunnerCommand string `json:"runner_command"`
	// HistoryLimit caps how many action/result pairs the game server remembers.
	HistoryLimit int `json:"history_limit"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultGame:       "zork1",
		DefaultSubmission: "walkthrough",
		MaxMoves:          20,
		ResultsDir:        "results",
		Seed:              0,
		RunnerCommand:     "python run_agent.py",
		HistoryLimit:      50,
	}
}

// LoadConfig loads the configuration from disk. If it cannot be done, we return the default configuration.
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

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}

	return &config
}

// saveConfig saves the configuration to disk
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

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}

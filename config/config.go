// Package config loads launcher defaults from an XDG-resolved JSON file.
// Command-line flags override whatever is loaded here.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "othello/config.json"

type Config struct {
	// Policy kind per side: human, random, minimax, alphabeta, timed.
	Black string `json:"black"`
	White string `json:"white"`
	// Param is the search depth in plies, or the time budget in
	// milliseconds for the timed policy.
	Param    int    `json:"param"`
	LogLevel string `json:"log_level"`
}

var DefaultConfig = Config{
	Black:    "human",
	White:    "random",
	Param:    3,
	LogLevel: "info",
}

// Load reads the config file if one exists, otherwise returns the defaults.
func Load() (Config, error) {
	cfg := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		// No config file; defaults apply.
		return cfg, nil
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", absPath, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", absPath, err)
	}
	return cfg, nil
}

// Save writes the config to the XDG config path, creating it if needed.
func Save(cfg Config) error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", absPath, err)
	}
	return nil
}

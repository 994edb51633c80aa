// Package config loads simulation settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete simulation configuration.
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// AccountConfig is the account registered and logged in at startup.
type AccountConfig struct {
	Username string  `json:"username" yaml:"username"`
	Password string  `json:"password" yaml:"password"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// SimulationConfig controls the run itself.
type SimulationConfig struct {
	Days        int    `json:"days" yaml:"days"`
	Seed        int64  `json:"seed" yaml:"seed"` // 0 seeds from the clock
	Strategy    string `json:"strategy" yaml:"strategy"`
	AutoSwitch  bool   `json:"auto_switch" yaml:"auto_switch"`
	MaxWaitDays int    `json:"max_wait_days" yaml:"max_wait_days"`
}

// JournalConfig selects the trade-log sink.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DaysFile   string `json:"days_file,omitempty" yaml:"days_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration out, choosing YAML or JSON by file
// extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Username == "" {
		return fmt.Errorf("account.username is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Simulation.Days <= 0 {
		return fmt.Errorf("simulation.days must be positive")
	}
	if c.Simulation.MaxWaitDays < 0 {
		return fmt.Errorf("simulation.max_wait_days must not be negative")
	}
	switch strings.ToLower(c.Simulation.Strategy) {
	case "conservative", "aggressive":
	default:
		return fmt.Errorf("simulation.strategy must be 'conservative' or 'aggressive'")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.DaysFile == "" {
			return fmt.Errorf("journal trades_file and days_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Username: "trader",
			Password: "secret",
			Balance:  10000,
		},
		Simulation: SimulationConfig{
			Days:        30,
			Seed:        0,
			Strategy:    "conservative",
			AutoSwitch:  true,
			MaxWaitDays: 10,
		},
		Journal: JournalConfig{
			Type:       "csv",
			TradesFile: "./trades.csv",
			DaysFile:   "./days.csv",
		},
	}
}

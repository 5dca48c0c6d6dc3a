// config.go - Configuration management for the note ledger driver.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SeedAccount describes an identity funded with an initial mint at startup.
type SeedAccount struct {
	Identity string `json:"identity"`
	Amount   uint64 `json:"amount"`
}

// Config represents the driver configuration.
type Config struct {
	// Ledger seeding
	AssetType string        `json:"asset_type"`
	Seeds     []SeedAccount `json:"seeds"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Submission rate limiting (per sender identity)
	RateMaxTokens     int `json:"rate_max_tokens"`
	RateRefillRate    int `json:"rate_refill_rate"`
	RateRefillSeconds int `json:"rate_refill_seconds"`

	// Security
	EnableAudit  bool   `json:"enable_audit"`
	AuditLogPath string `json:"audit_log_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AssetType: "BTC",
		Seeds: []SeedAccount{
			{Identity: "alice", Amount: 100},
			{Identity: "bob", Amount: 0},
		},
		LogLevel:          "info",
		LogFile:           "noteledger.log",
		RateMaxTokens:     10,
		RateRefillRate:    1,
		RateRefillSeconds: 1,
		EnableAudit:       true,
		AuditLogPath:      "audit.log",
	}
}

// LoadConfig loads configuration from file or creates the default.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		var config Config
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		return &config, nil
	}

	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}
	return config, nil
}

// SaveConfig saves configuration to file.
func SaveConfig(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.AssetType == "" {
		return fmt.Errorf("asset_type must not be empty")
	}
	if len(c.Seeds) == 0 {
		return fmt.Errorf("seeds must name at least one identity")
	}
	seen := make(map[string]bool)
	for _, s := range c.Seeds {
		if s.Identity == "" {
			return fmt.Errorf("seed identity must not be empty")
		}
		if seen[s.Identity] {
			return fmt.Errorf("duplicate seed identity %q", s.Identity)
		}
		seen[s.Identity] = true
	}
	if c.RateMaxTokens <= 0 {
		return fmt.Errorf("rate_max_tokens must be positive")
	}
	if c.RateRefillRate <= 0 {
		return fmt.Errorf("rate_refill_rate must be positive")
	}
	if c.RateRefillSeconds <= 0 {
		return fmt.Errorf("rate_refill_seconds must be positive")
	}
	return nil
}

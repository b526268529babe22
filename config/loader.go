package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/ledgerclient/ledger"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if necessary
	if cfg.Retry.InitialDelay == 0 {
		cfg.Retry.InitialDelay = ledger.DefaultBackoff.InitialDelay
	}
	if cfg.Retry.MaxDelay == 0 {
		cfg.Retry.MaxDelay = ledger.DefaultBackoff.MaxDelay
	}
	if cfg.Retry.Multiplier == 0 {
		cfg.Retry.Multiplier = ledger.DefaultBackoff.Multiplier
	}
	if cfg.TxLog.Backend == "" {
		cfg.TxLog.Backend = "none"
	}

	return &cfg, nil
}

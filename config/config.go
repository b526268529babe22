// Package config loads YAML configuration for applications embedding the
// SDK.
package config

import (
	"fmt"
	"time"

	"github.com/vietddude/ledgerclient/ledger"
	"github.com/vietddude/ledgerclient/txlog"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Operator string        `yaml:"operator"`
	Nodes    []NodeConfig  `yaml:"nodes"`
	Retry    RetryConfig   `yaml:"retry"`
	Logging  LoggingConfig `yaml:"logging"`
	TxLog    TxLogConfig   `yaml:"txlog"`
}

// NodeConfig holds one node's address and operating account.
type NodeConfig struct {
	Account string `yaml:"account"`
	Address string `yaml:"address"`
}

// RetryConfig holds backoff settings for the executor.
type RetryConfig struct {
	InitialDelay time.Duration `yaml:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
	Multiplier   float64       `yaml:"multiplier"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// TxLogConfig selects and configures the submission log backend.
type TxLogConfig struct {
	Backend       string               `yaml:"backend"` // none, memory, redis, postgres
	Redis         txlog.RedisConfig    `yaml:"redis"`
	Postgres      txlog.PostgresConfig `yaml:"postgres"`
	MigrationsDir string               `yaml:"migrations_dir"`
}

// NetworkNodes converts the node list into the address-to-account map
// ledger.NewNetwork expects.
func (c *AppConfig) NetworkNodes() (map[string]ledger.AccountID, error) {
	nodes := make(map[string]ledger.AccountID, len(c.Nodes))
	for _, n := range c.Nodes {
		acc, err := ledger.ParseAccountID(n.Account)
		if err != nil {
			return nil, fmt.Errorf("invalid node account: %w", err)
		}
		nodes[n.Address] = acc
	}
	return nodes, nil
}

// OperatorAccount parses the configured operator account.
func (c *AppConfig) OperatorAccount() (ledger.AccountID, error) {
	return ledger.ParseAccountID(c.Operator)
}

// Backoff converts retry settings into the executor's delay policy.
func (c *AppConfig) Backoff() ledger.Backoff {
	return ledger.Backoff{
		InitialDelay: c.Retry.InitialDelay,
		MaxDelay:     c.Retry.MaxDelay,
		Multiplier:   c.Retry.Multiplier,
	}
}

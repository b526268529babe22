package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/ledgerclient/config"
	"github.com/vietddude/ledgerclient/ledger"
	"github.com/vietddude/ledgerclient/txlog"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	isDebug := flag.Bool("debug", false, "Enable debug logging")
	genCount := flag.Int("generate", 0, "Generate N transaction IDs and exit")
	balanceOf := flag.String("balance", "", "Query the balance of an account (e.g. 0.0.3)")
	flag.Parse()

	_ = godotenv.Load()

	// Load Configuration first (before setting up logger)
	cfg, err := config.Load(*configPath)
	if err != nil {
		// Fall back to default logger for config load errors
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := slog.LevelInfo
	if *isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(
		&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})

	operator, err := cfg.OperatorAccount()
	if err != nil {
		slog.Error("Invalid operator account", "error", err)
		os.Exit(1)
	}

	// Pure ID generation needs no network.
	if *genCount > 0 {
		for i := 0; i < *genCount; i++ {
			fmt.Println(ledger.NewTransactionID(operator))
		}
		return
	}

	nodes, err := cfg.NetworkNodes()
	if err != nil {
		slog.Error("Invalid node configuration", "error", err)
		os.Exit(1)
	}

	network, err := ledger.NewNetwork(nodes)
	if err != nil {
		slog.Error("Failed to build network", "error", err)
		os.Exit(1)
	}

	opts := []ledger.Option{ledger.WithBackoff(cfg.Backoff())}
	recorder, err := newRecorder(cfg)
	if err != nil {
		slog.Error("Failed to initialize submission log", "error", err)
		os.Exit(1)
	}
	if recorder != nil {
		defer recorder.Close()
		opts = append(opts, ledger.WithSubmissionRecorder(recorder))
	}

	client := ledger.NewClient(network, operator, opts...)
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	account := operator
	if *balanceOf != "" {
		account, err = ledger.ParseAccountID(*balanceOf)
		if err != nil {
			slog.Error("Invalid account", "error", err)
			os.Exit(1)
		}
	}

	balance, err := ledger.NewAccountBalanceQuery(account).Execute(ctx, client)
	if err != nil {
		slog.Error("Balance query failed", "account", account, "error", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d\n", account, balance)
}

func newRecorder(cfg *config.AppConfig) (txlog.Log, error) {
	switch cfg.TxLog.Backend {
	case "none":
		return nil, nil
	case "memory":
		return txlog.NewMemoryLog(), nil
	case "redis":
		return txlog.NewRedisLog(cfg.TxLog.Redis)
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := txlog.NewPostgresLog(ctx, cfg.TxLog.Postgres)
		if err != nil {
			return nil, err
		}
		if cfg.TxLog.MigrationsDir != "" {
			if err := pg.Migrate(cfg.TxLog.MigrationsDir); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown txlog backend %q", cfg.TxLog.Backend)
	}
}

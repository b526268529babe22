package txlog

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Use pgx via database/sql
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/vietddude/ledgerclient/ledger"
)

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	URL      string `yaml:"url"`
	MaxConns int    `yaml:"max_conns"`
}

// PostgresLog stores submission records in a submissions table.
type PostgresLog struct {
	db *sqlx.DB
}

// NewPostgresLog opens the database connection and verifies it.
func NewPostgresLog(ctx context.Context, cfg PostgresConfig) (*PostgresLog, error) {
	db, err := sqlx.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	} else {
		db.SetMaxOpenConns(10)
	}
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresLog{db: db}, nil
}

// Migrate runs goose migrations from the given directory.
func (l *PostgresLog) Migrate(dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(l.db.DB, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// RecordSubmission inserts a record.
func (l *PostgresLog) RecordSubmission(ctx context.Context, id ledger.TransactionID, node ledger.AccountID, st ledger.Status, callErr error) error {
	rec := newRecord(id, node, st, callErr)

	query := `
		INSERT INTO submissions (
			id, transaction_id, payer, node, status, error, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := l.db.ExecContext(ctx, query,
		rec.ID, rec.TransactionID, rec.Payer, rec.Node, rec.Status, rec.Error, rec.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (l *PostgresLog) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `
		SELECT id, transaction_id, payer, node, status, error, submitted_at
		FROM submissions
		ORDER BY submitted_at DESC
		LIMIT $1
	`
	var out []Record
	if err := l.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return out, nil
}

// Close closes the database connection.
func (l *PostgresLog) Close() error {
	return l.db.Close()
}

package txlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vietddude/ledgerclient/ledger"
)

const (
	submissionsKey = "txlog:submissions"

	// maxKeptRecords bounds the Redis list so the log cannot grow without
	// limit.
	maxKeptRecords = 10000
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
}

// RedisLog stores submission records in a capped Redis list.
type RedisLog struct {
	rdb *redis.Client
}

// NewRedisLog connects to Redis and verifies the connection.
func NewRedisLog(cfg RedisConfig) (*RedisLog, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisLog{rdb: rdb}, nil
}

// RecordSubmission pushes a record onto the submission list and trims it
// to the retention cap.
func (l *RedisLog) RecordSubmission(ctx context.Context, id ledger.TransactionID, node ledger.AccountID, st ledger.Status, callErr error) error {
	rec := newRecord(id, node, st, callErr)

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal submission record: %w", err)
	}

	pipe := l.rdb.Pipeline()
	pipe.LPush(ctx, submissionsKey, data)
	pipe.LTrim(ctx, submissionsKey, 0, maxKeptRecords-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (l *RedisLog) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		// A non-positive stop index would make LRange span the whole list.
		return nil, nil
	}
	raw, err := l.rdb.LRange(ctx, submissionsKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Close closes the Redis connection.
func (l *RedisLog) Close() error {
	return l.rdb.Close()
}

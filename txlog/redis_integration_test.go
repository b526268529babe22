package txlog

import (
	"context"
	"os"
	"testing"

	"github.com/vietddude/ledgerclient/ledger"
)

func TestRedisLog_Live(t *testing.T) {
	url := os.Getenv("TXLOG_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping live redis test. Set TXLOG_TEST_REDIS_URL to run.")
	}

	log, err := NewRedisLog(RedisConfig{URL: url})
	if err != nil {
		t.Fatalf("NewRedisLog failed: %v", err)
	}
	defer log.Close()

	ctx := context.Background()
	id := ledger.NewTransactionID(ledger.AccountID{Num: 2})
	if err := log.RecordSubmission(ctx, id, ledger.AccountID{Num: 3}, ledger.StatusBusy, nil); err != nil {
		t.Fatalf("RecordSubmission failed: %v", err)
	}

	recent, err := log.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 1 || recent[0].TransactionID != id.String() {
		t.Errorf("unexpected records: %+v", recent)
	}

	empty, err := log.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent(0) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no records for limit 0, got %d", len(empty))
	}
}

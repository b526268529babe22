package txlog

import (
	"context"
	"sync"

	"github.com/vietddude/ledgerclient/ledger"
)

// MemoryLog keeps submission records in memory. Intended for tests and
// short-lived tools.
type MemoryLog struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryLog creates an empty in-memory log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// RecordSubmission appends a record.
func (l *MemoryLog) RecordSubmission(_ context.Context, id ledger.TransactionID, node ledger.AccountID, st ledger.Status, callErr error) error {
	rec := newRecord(id, node, st, callErr)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

// Recent returns up to limit records, newest first.
func (l *MemoryLog) Recent(_ context.Context, limit int) ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.records)
	if limit > n {
		limit = n
	}

	out := make([]Record, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}

// Close is a no-op for the in-memory log.
func (l *MemoryLog) Close() error {
	return nil
}

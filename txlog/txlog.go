// Package txlog persists transaction submission outcomes so an operator
// can reconcile what was submitted against what the network accepted.
//
// A Log plugs into the SDK via ledger.WithSubmissionRecorder. Backends:
// in-memory (tests, short-lived tools), Redis, and PostgreSQL.
package txlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vietddude/ledgerclient/ledger"
)

// Record captures one submission outcome.
type Record struct {
	ID            string    `db:"id"             json:"id"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	Payer         string    `db:"payer"          json:"payer"`
	Node          string    `db:"node"           json:"node"`
	Status        string    `db:"status"         json:"status"`
	Error         string    `db:"error"          json:"error"`
	SubmittedAt   time.Time `db:"submitted_at"   json:"submitted_at"`
}

// Log is a persisted submission log.
type Log interface {
	ledger.SubmissionRecorder

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close() error
}

func newRecord(id ledger.TransactionID, node ledger.AccountID, st ledger.Status, callErr error) Record {
	r := Record{
		ID:            uuid.New().String(),
		TransactionID: id.String(),
		Payer:         id.AccountID.String(),
		Node:          node.String(),
		Status:        st.String(),
		SubmittedAt:   time.Now().UTC(),
	}
	if callErr != nil {
		r.Error = callErr.Error()
	}
	return r
}

package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/vietddude/ledgerclient/internal/wire"
)

type fakeRecorder struct {
	ids      []TransactionID
	statuses []Status
	errs     []error
}

func (r *fakeRecorder) RecordSubmission(_ context.Context, id TransactionID, _ AccountID, st Status, callErr error) error {
	r.ids = append(r.ids, id)
	r.statuses = append(r.statuses, st)
	r.errs = append(r.errs, callErr)
	return nil
}

func TestSubmitTransaction_Accepted(t *testing.T) {
	ch := &stubChannel{outcome: func(int) ([]byte, error) {
		return wire.AppendAck(nil, wire.Ack{Status: uint64(StatusOk)}), nil
	}}
	rec := &fakeRecorder{}
	p := &stubProvider{nodes: []AccountID{{Num: 3}}, channel: ch}
	client := NewClient(p, AccountID{Num: 2},
		WithBackoff(&countingDelayer{}),
		WithSubmissionRecorder(rec))

	id, err := client.SubmitTransaction(context.Background(), []byte("signed body"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if id.AccountID != client.Operator() {
		t.Errorf("transaction ID payer = %s, want operator %s", id.AccountID, client.Operator())
	}

	if len(rec.ids) != 1 {
		t.Fatalf("expected 1 recorded submission, got %d", len(rec.ids))
	}
	if rec.ids[0] != id || rec.statuses[0] != StatusOk || rec.errs[0] != nil {
		t.Errorf("unexpected record: id=%s status=%s err=%v", rec.ids[0], rec.statuses[0], rec.errs[0])
	}
}

func TestSubmitTransaction_RejectedStillReturnsID(t *testing.T) {
	ch := &stubChannel{outcome: func(int) ([]byte, error) {
		return wire.AppendAck(nil, wire.Ack{Status: uint64(StatusInvalidSignature)}), nil
	}}
	rec := &fakeRecorder{}
	p := &stubProvider{nodes: []AccountID{{Num: 3}}, channel: ch}
	client := NewClient(p, AccountID{Num: 2},
		WithBackoff(&countingDelayer{}),
		WithSubmissionRecorder(rec))

	id, err := client.SubmitTransaction(context.Background(), []byte("signed body"))

	var pre *PrecheckError
	if !errors.As(err, &pre) {
		t.Fatalf("expected *PrecheckError, got %v", err)
	}
	if id == (TransactionID{}) {
		t.Error("transaction ID must be returned even when submission fails")
	}
	if len(rec.statuses) != 1 || rec.statuses[0] != StatusInvalidSignature {
		t.Errorf("expected recorded status INVALID_SIGNATURE, got %v", rec.statuses)
	}
}

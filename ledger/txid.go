package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vietddude/ledgerclient/internal/wire"
)

// clockSkewAllowance is how far validStart is shifted behind the local
// clock so that a node whose clock lags ours still accepts the transaction.
const clockSkewAllowance = 10 * time.Second

var (
	lastInstantMu sync.Mutex
	lastInstant   time.Time
)

// TransactionID is the client-generated ID for a transaction.
//
// The network uses it to detect duplicate submissions, and clients use it
// as the correlation key for fetching receipts and records afterwards.
type TransactionID struct {
	// AccountID is the account that pays the transaction fees.
	AccountID AccountID

	// ValidStart is the start of the window in which the network may
	// process the transaction.
	ValidStart time.Time
}

// NewTransactionID generates a transaction ID for the given payer account.
// IDs handed out by a single process are strictly increasing, even when two
// calls land on the same clock tick or the wall clock stalls.
func NewTransactionID(payer AccountID) TransactionID {
	return TransactionID{AccountID: payer, ValidStart: increasingInstant()}
}

func increasingInstant() time.Time {
	lastInstantMu.Lock()
	defer lastInstantMu.Unlock()

	start := time.Now().UTC().Add(-clockSkewAllowance)

	if !lastInstant.IsZero() && !start.After(lastInstant) {
		lastInstant = lastInstant.Add(time.Nanosecond)
	} else {
		lastInstant = start
	}

	return lastInstant
}

// GetReceipt fetches the post-consensus receipt for this transaction.
func (id TransactionID) GetReceipt(ctx context.Context, c *Client) (TransactionReceipt, error) {
	return Execute(ctx, c, NewReceiptQuery(id))
}

// ToBytes encodes the ID into its fixed binary layout of
// (account reference, seconds, nanoseconds).
func (id TransactionID) ToBytes() []byte {
	return wire.AppendTransactionID(nil, id.toWire())
}

// TransactionIDFromBytes decodes an ID previously produced by ToBytes.
func TransactionIDFromBytes(b []byte) (TransactionID, error) {
	w, err := wire.ParseTransactionID(b)
	if err != nil {
		return TransactionID{}, fmt.Errorf("failed to decode transaction ID: %w", err)
	}
	return transactionIDFromWire(w), nil
}

func (id TransactionID) toWire() wire.TransactionID {
	return wire.TransactionID{
		Account: wire.AccountID{
			Shard: id.AccountID.Shard,
			Realm: id.AccountID.Realm,
			Num:   id.AccountID.Num,
		},
		ValidStart: wire.Timestamp{
			Seconds: id.ValidStart.Unix(),
			Nanos:   int32(id.ValidStart.Nanosecond()),
		},
	}
}

func transactionIDFromWire(w wire.TransactionID) TransactionID {
	return TransactionID{
		AccountID:  AccountID{Shard: w.Account.Shard, Realm: w.Account.Realm, Num: w.Account.Num},
		ValidStart: time.Unix(w.ValidStart.Seconds, int64(w.ValidStart.Nanos)).UTC(),
	}
}

// String renders the ID as <account>@<seconds>.<nanos>. The textual form is
// for logs and diagnostics only and is not guaranteed machine-parseable.
func (id TransactionID) String() string {
	return fmt.Sprintf("%s@%d.%d", id.AccountID, id.ValidStart.Unix(), id.ValidStart.Nanosecond())
}

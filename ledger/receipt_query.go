package ledger

import (
	"fmt"
	"time"

	"github.com/vietddude/ledgerclient/internal/wire"
)

// TransactionReceipt is the post-consensus artifact confirming a
// transaction's outcome.
type TransactionReceipt struct {
	// Status is the transaction's consensus outcome, distinct from the
	// precheck status of the query that fetched this receipt.
	Status Status

	// ConsensusAt is when the network reached consensus on the transaction.
	ConsensusAt time.Time
}

// ReceiptQuery fetches the receipt for a transaction by its ID.
type ReceiptQuery struct {
	txID TransactionID
	node *AccountID
}

// NewReceiptQuery creates a receipt query for the given transaction.
func NewReceiptQuery(txID TransactionID) *ReceiptQuery {
	return &ReceiptQuery{txID: txID}
}

// SetNodeAccount pins the query to one node instead of rotating.
func (q *ReceiptQuery) SetNodeAccount(acc AccountID) *ReceiptQuery {
	q.node = &acc
	return q
}

func (q *ReceiptQuery) MakeRequest() ([]byte, error) {
	return wire.AppendReceiptQuery(nil, wire.ReceiptQuery{TransactionID: q.txID.toWire()}), nil
}

func (q *ReceiptQuery) MapResponse(resp []byte) (TransactionReceipt, error) {
	r, err := wire.ParseReceiptResponse(resp)
	if err != nil {
		return TransactionReceipt{}, fmt.Errorf("failed to decode receipt response: %w", err)
	}
	return TransactionReceipt{
		Status:      Status(r.ReceiptStatus),
		ConsensusAt: time.Unix(r.ConsensusAt.Seconds, int64(r.ConsensusAt.Nanos)).UTC(),
	}, nil
}

func (q *ReceiptQuery) MapResponseStatus(resp []byte) (Status, error) {
	r, err := wire.ParseReceiptResponse(resp)
	if err != nil {
		return 0, fmt.Errorf("failed to decode receipt response: %w", err)
	}
	return Status(r.Status), nil
}

func (q *ReceiptQuery) MethodPath() string {
	return "/ledger.v1.LedgerService/GetTransactionReceipt"
}

func (q *ReceiptQuery) NodeAccount(p ChannelProvider) AccountID {
	if q.node != nil {
		return *q.node
	}
	return p.NextNode()
}

func (q *ReceiptQuery) TransactionID() *TransactionID {
	id := q.txID
	return &id
}

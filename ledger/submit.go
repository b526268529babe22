package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietddude/ledgerclient/internal/wire"
)

// TransactionSubmit submits an already-signed transaction body under a
// transaction ID. The body is opaque to the SDK core; signing happens
// upstream.
type TransactionSubmit struct {
	id         TransactionID
	signedBody []byte

	// lastNode is the node the most recent attempt targeted, kept for
	// submission recording.
	lastNode AccountID
}

// NewTransactionSubmit creates a submission for a signed body under the
// given transaction ID.
func NewTransactionSubmit(id TransactionID, signedBody []byte) *TransactionSubmit {
	return &TransactionSubmit{id: id, signedBody: signedBody}
}

func (s *TransactionSubmit) MakeRequest() ([]byte, error) {
	return wire.AppendSubmitRequest(nil, wire.SubmitRequest{
		TransactionID: s.id.toWire(),
		SignedBody:    s.signedBody,
	}), nil
}

func (s *TransactionSubmit) MapResponse(resp []byte) (TransactionID, error) {
	return s.id, nil
}

func (s *TransactionSubmit) MapResponseStatus(resp []byte) (Status, error) {
	ack, err := wire.ParseAck(resp)
	if err != nil {
		return 0, fmt.Errorf("failed to decode submit ack: %w", err)
	}
	return Status(ack.Status), nil
}

func (s *TransactionSubmit) MethodPath() string {
	return "/ledger.v1.LedgerService/SubmitTransaction"
}

func (s *TransactionSubmit) NodeAccount(p ChannelProvider) AccountID {
	s.lastNode = p.NextNode()
	return s.lastNode
}

func (s *TransactionSubmit) TransactionID() *TransactionID {
	id := s.id
	return &id
}

// SubmitTransaction generates a transaction ID for the client's operator
// account and submits the signed body under it. The returned ID is the
// correlation key for fetching the receipt afterwards; it is returned even
// when submission fails so callers can reconcile.
func (c *Client) SubmitTransaction(ctx context.Context, signedBody []byte) (TransactionID, error) {
	return c.SubmitTransactionWithID(ctx, NewTransactionID(c.operator), signedBody)
}

// SubmitTransactionWithID submits a signed body under a caller-supplied
// transaction ID.
func (c *Client) SubmitTransactionWithID(ctx context.Context, id TransactionID, signedBody []byte) (TransactionID, error) {
	op := NewTransactionSubmit(id, signedBody)
	_, err := Execute(ctx, c, op)

	st := StatusOk
	var pre *PrecheckError
	if errors.As(err, &pre) {
		st = pre.Status
	}
	c.recordSubmission(ctx, id, op.lastNode, st, err)

	return id, err
}

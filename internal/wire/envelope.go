package wire

import "google.golang.org/protobuf/encoding/protowire"

// Request and response envelopes for the service methods the SDK ships
// operations for. Every response leads with the node's precheck status in
// field 1 so the executor can classify it without knowing the payload.

// ReceiptQuery asks a node for the post-consensus receipt of a transaction.
// Fields: transactionID=1 (message).
type ReceiptQuery struct {
	TransactionID TransactionID
}

func AppendReceiptQuery(b []byte, q ReceiptQuery) []byte {
	return appendMessage(b, 1, AppendTransactionID(nil, q.TransactionID))
}

func ParseReceiptQuery(b []byte) (ReceiptQuery, error) {
	var q ReceiptQuery
	var inner error
	err := eachField(b, func(num protowire.Number, _ uint64, msg []byte) {
		if num == 1 {
			q.TransactionID, inner = ParseTransactionID(msg)
		}
	})
	if err == nil {
		err = inner
	}
	return q, err
}

// ReceiptResponse carries the precheck status plus the receipt itself.
// Fields: status=1 (varint), receiptStatus=2 (varint), consensusAt=3 (message).
type ReceiptResponse struct {
	Status        uint64
	ReceiptStatus uint64
	ConsensusAt   Timestamp
}

func AppendReceiptResponse(b []byte, r ReceiptResponse) []byte {
	if r.Status != 0 {
		b = appendVarintField(b, 1, r.Status)
	}
	if r.ReceiptStatus != 0 {
		b = appendVarintField(b, 2, r.ReceiptStatus)
	}
	b = appendMessage(b, 3, AppendTimestamp(nil, r.ConsensusAt))
	return b
}

func ParseReceiptResponse(b []byte) (ReceiptResponse, error) {
	var r ReceiptResponse
	var inner error
	err := eachField(b, func(num protowire.Number, v uint64, msg []byte) {
		switch num {
		case 1:
			r.Status = v
		case 2:
			r.ReceiptStatus = v
		case 3:
			r.ConsensusAt, inner = ParseTimestamp(msg)
		}
	})
	if err == nil {
		err = inner
	}
	return r, err
}

// BalanceQuery asks a single node for an account's balance.
// Fields: account=1 (message).
type BalanceQuery struct {
	Account AccountID
}

func AppendBalanceQuery(b []byte, q BalanceQuery) []byte {
	return appendMessage(b, 1, AppendAccountID(nil, q.Account))
}

func ParseBalanceQuery(b []byte) (BalanceQuery, error) {
	var q BalanceQuery
	var inner error
	err := eachField(b, func(num protowire.Number, _ uint64, msg []byte) {
		if num == 1 {
			q.Account, inner = ParseAccountID(msg)
		}
	})
	if err == nil {
		err = inner
	}
	return q, err
}

// BalanceResponse carries the precheck status and the balance in the
// network's smallest denomination.
// Fields: status=1 (varint), balance=2 (varint).
type BalanceResponse struct {
	Status  uint64
	Balance uint64
}

func AppendBalanceResponse(b []byte, r BalanceResponse) []byte {
	if r.Status != 0 {
		b = appendVarintField(b, 1, r.Status)
	}
	if r.Balance != 0 {
		b = appendVarintField(b, 2, r.Balance)
	}
	return b
}

func ParseBalanceResponse(b []byte) (BalanceResponse, error) {
	var r BalanceResponse
	err := eachField(b, func(num protowire.Number, v uint64, _ []byte) {
		switch num {
		case 1:
			r.Status = v
		case 2:
			r.Balance = v
		}
	})
	return r, err
}

// SubmitRequest submits an already-signed transaction body.
// Fields: transactionID=1 (message), signedBody=2 (bytes).
type SubmitRequest struct {
	TransactionID TransactionID
	SignedBody    []byte
}

func AppendSubmitRequest(b []byte, r SubmitRequest) []byte {
	b = appendMessage(b, 1, AppendTransactionID(nil, r.TransactionID))
	if len(r.SignedBody) > 0 {
		b = appendMessage(b, 2, r.SignedBody)
	}
	return b
}

func ParseSubmitRequest(b []byte) (SubmitRequest, error) {
	var r SubmitRequest
	var inner error
	err := eachField(b, func(num protowire.Number, _ uint64, msg []byte) {
		switch num {
		case 1:
			r.TransactionID, inner = ParseTransactionID(msg)
		case 2:
			r.SignedBody = append([]byte(nil), msg...)
		}
	})
	if err == nil {
		err = inner
	}
	return r, err
}

// Ack is the node's precheck acknowledgement of a submission.
// Fields: status=1 (varint).
type Ack struct {
	Status uint64
}

func AppendAck(b []byte, a Ack) []byte {
	if a.Status != 0 {
		b = appendVarintField(b, 1, a.Status)
	}
	return b
}

func ParseAck(b []byte) (Ack, error) {
	var a Ack
	err := eachField(b, func(num protowire.Number, v uint64, _ []byte) {
		if num == 1 {
			a.Status = v
		}
	})
	return a, err
}

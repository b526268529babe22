package ledger

import "fmt"

// Status is the application-level outcome a node attaches to every
// response. Anything other than StatusOk and StatusBusy is a terminal
// rejection of the request.
type Status uint32

const (
	StatusOk                       Status = 0
	StatusInvalidTransaction       Status = 1
	StatusPayerAccountNotFound     Status = 2
	StatusInvalidNodeAccount       Status = 3
	StatusTransactionExpired       Status = 4
	StatusInvalidTransactionStart  Status = 5
	StatusInvalidSignature         Status = 7
	StatusInsufficientTxFee        Status = 9
	StatusInsufficientPayerBalance Status = 10
	StatusDuplicateTransaction     Status = 11
	StatusBusy                     Status = 21
	StatusNotSupported             Status = 22
	StatusRecordNotFound           Status = 25
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "OK"
	case StatusInvalidTransaction:
		return "INVALID_TRANSACTION"
	case StatusPayerAccountNotFound:
		return "PAYER_ACCOUNT_NOT_FOUND"
	case StatusInvalidNodeAccount:
		return "INVALID_NODE_ACCOUNT"
	case StatusTransactionExpired:
		return "TRANSACTION_EXPIRED"
	case StatusInvalidTransactionStart:
		return "INVALID_TRANSACTION_START"
	case StatusInvalidSignature:
		return "INVALID_SIGNATURE"
	case StatusInsufficientTxFee:
		return "INSUFFICIENT_TX_FEE"
	case StatusInsufficientPayerBalance:
		return "INSUFFICIENT_PAYER_BALANCE"
	case StatusDuplicateTransaction:
		return "DUPLICATE_TRANSACTION"
	case StatusBusy:
		return "BUSY"
	case StatusNotSupported:
		return "NOT_SUPPORTED"
	case StatusRecordNotFound:
		return "RECORD_NOT_FOUND"
	default:
		return fmt.Sprintf("STATUS_%d", uint32(s))
	}
}

package ledger

import (
	"fmt"

	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PrecheckError is returned when a node rejects a request with a terminal,
// non-retryable status. TransactionID is nil for bare queries that have no
// associated transaction.
type PrecheckError struct {
	Status        Status
	TransactionID *TransactionID
}

func (e *PrecheckError) Error() string {
	if e.TransactionID != nil {
		return fmt.Sprintf("transaction %s failed precheck with status %s", e.TransactionID, e.Status)
	}
	return fmt.Sprintf("query failed precheck with status %s", e.Status)
}

// retryableTransport reports whether a transport-level error is a transient
// infrastructure condition worth another attempt: the node was unreachable
// or shed load. Everything else fails fast, surfaced unchanged.
func retryableTransport(err error) bool {
	s, ok := status.FromError(err)
	if !ok {
		return false
	}
	return s.Code() == codes.Unavailable || s.Code() == codes.ResourceExhausted
}

// TransportStatusProto returns the raw gRPC status proto attached to a
// transport error, or nil when the error carries none. Useful when callers
// want the node's full error detail for diagnostics.
func TransportStatusProto(err error) *spb.Status {
	s, ok := status.FromError(err)
	if !ok {
		return nil
	}
	return s.Proto()
}

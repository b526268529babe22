package ledger

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRetryableTransport(t *testing.T) {
	tests := []struct {
		err    error
		expect bool
	}{
		{status.Error(codes.Unavailable, "node down"), true},
		{status.Error(codes.ResourceExhausted, "shedding load"), true},
		{status.Error(codes.InvalidArgument, "bad request"), false},
		{status.Error(codes.Internal, "node bug"), false},
		{status.Error(codes.DeadlineExceeded, "took too long"), false},
		{errors.New("not a grpc error"), false},
	}

	for _, tt := range tests {
		if got := retryableTransport(tt.err); got != tt.expect {
			t.Errorf("retryableTransport(%v) = %v, want %v", tt.err, got, tt.expect)
		}
	}
}

func TestPrecheckError_Error(t *testing.T) {
	id := TransactionID{AccountID: AccountID{Num: 2}}

	withID := &PrecheckError{Status: StatusInsufficientTxFee, TransactionID: &id}
	if got := withID.Error(); !strings.Contains(got, "INSUFFICIENT_TX_FEE") || !strings.Contains(got, id.String()) {
		t.Errorf("unexpected error rendering: %q", got)
	}

	bare := &PrecheckError{Status: StatusNotSupported}
	if got, want := bare.Error(), "query failed precheck with status NOT_SUPPORTED"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTransportStatusProto(t *testing.T) {
	if p := TransportStatusProto(status.Error(codes.Unavailable, "down")); p == nil {
		t.Error("expected status proto for grpc error, got nil")
	} else if codes.Code(p.Code) != codes.Unavailable {
		t.Errorf("unexpected code %d", p.Code)
	}

	if p := TransportStatusProto(errors.New("plain")); p != nil {
		t.Errorf("expected nil for non-grpc error, got %v", p)
	}
}

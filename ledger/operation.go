package ledger

// Operation is the capability contract between the executor and the
// per-operation builders. The executor is generic over it and never
// branches on what the operation actually does.
type Operation[R any] interface {
	// MakeRequest builds the wire request. Called once per attempt; the
	// payload must not vary across attempts.
	MakeRequest() ([]byte, error)

	// MapResponse decodes a successful response into the caller-visible
	// result type.
	MapResponse(resp []byte) (R, error)

	// MapResponseStatus extracts the application status from a raw
	// response.
	MapResponseStatus(resp []byte) (Status, error)

	// MethodPath identifies the full remote method to invoke,
	// e.g. "/ledger.v1.LedgerService/GetTransactionReceipt".
	MethodPath() string

	// NodeAccount picks the target node for the current attempt. May
	// rotate nodes across attempts.
	NodeAccount(p ChannelProvider) AccountID

	// TransactionID supplies correlation context for error reporting.
	// Nil for bare queries with no associated transaction.
	TransactionID() *TransactionID
}

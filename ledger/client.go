// Package ledger is a client SDK for submitting signed transactions and
// read queries to a distributed ledger network over gRPC.
//
// The SDK reconciles the network's asynchronous, multi-node response model
// into a single deterministic result per call: Execute drives the
// send/classify/retry loop, and NewTransactionID hands out the strictly
// increasing identifiers the network uses to deduplicate submissions.
package ledger

import (
	"context"
	"log/slog"
	"time"
)

// SubmissionRecorder receives every transaction submission outcome.
// Implementations can persist them for later reconciliation; see the txlog
// package. Recording failures are logged, never surfaced to the caller.
type SubmissionRecorder interface {
	RecordSubmission(ctx context.Context, id TransactionID, node AccountID, st Status, callErr error) error
}

// Client binds an operator account to a network and a retry policy.
type Client struct {
	provider ChannelProvider
	operator AccountID
	delays   DelayProvider
	recorder SubmissionRecorder
}

// Option customizes a Client.
type Option func(*Client)

// WithBackoff overrides the default retry delay policy.
func WithBackoff(d DelayProvider) Option {
	return func(c *Client) { c.delays = d }
}

// WithSubmissionRecorder records every submission outcome for later
// reconciliation.
func WithSubmissionRecorder(r SubmissionRecorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a client. The operator account pays for transactions
// the client generates IDs for.
func NewClient(provider ChannelProvider, operator AccountID, opts ...Option) *Client {
	c := &Client{
		provider: provider,
		operator: operator,
		delays:   DefaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Operator returns the account that pays for this client's transactions.
func (c *Client) Operator() AccountID {
	return c.operator
}

// Close releases the underlying network channels when the client owns a
// closable provider.
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (c *Client) recordSubmission(ctx context.Context, id TransactionID, node AccountID, st Status, callErr error) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordSubmission(ctx, id, node, st, callErr); err != nil {
		slog.Warn("failed to record submission", "txid", id, "error", err)
	}
}

// delayFor exists so the executor reads its policy in one place.
func (c *Client) delayFor(attempt int) time.Duration {
	return c.delays.DelayFor(attempt)
}

package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietddude/ledgerclient/internal/metrics"
)

// Execute runs one logical operation against the network until it produces
// a terminal outcome.
//
// Each attempt resolves a target node, dispatches the call, and classifies
// the result into exactly one of three buckets: a transport failure, an
// application status, or success. Transient transport conditions (node
// unreachable, remote resource exhaustion) and a BUSY application status
// are retried after a backoff delay, rotating nodes where the operation
// allows it. Any other transport error surfaces unchanged, and any other
// application status surfaces as a *PrecheckError carrying the status and
// the originating transaction ID.
//
// Execute itself imposes no attempt cap; bound it with the context.
// Attempts are strictly sequential: attempt N+1 is never dispatched before
// attempt N's outcome is classified.
func Execute[R any](ctx context.Context, c *Client, op Operation[R]) (R, error) {
	var zero R
	method := op.MethodPath()

	// Observed on every terminal return, whichever exit path takes it.
	attempt := 1
	defer func() {
		metrics.RPCAttempts.Observe(float64(attempt))
	}()

	for ; ; attempt++ {
		nodeAcc := op.NodeAccount(c.provider)

		req, err := op.MakeRequest()
		if err != nil {
			return zero, err
		}

		ch, err := c.provider.ChannelFor(ctx, nodeAcc)
		if err != nil {
			// Dial failures classify like any other transport outcome.
			c.provider.RecordFailure(nodeAcc, err)
			if !retryableTransport(err) {
				return zero, err
			}
			slog.Error("node unreachable, retrying",
				"node", nodeAcc, "method", method, "attempt", attempt, "error", err)
			if err := waitBackoff(ctx, c, attempt); err != nil {
				return zero, err
			}
			continue
		}

		slog.Debug("sending request", "node", nodeAcc, "method", method, "attempt", attempt)
		metrics.RPCCallsTotal.WithLabelValues(nodeAcc.String(), method).Inc()

		startAt := time.Now()
		resp, err := ch.Invoke(ctx, method, req)
		latency := time.Since(startAt)
		metrics.RPCLatency.WithLabelValues(nodeAcc.String(), method).Observe(latency.Seconds())

		if err != nil {
			c.provider.RecordFailure(nodeAcc, err)
			metrics.RPCErrorsTotal.WithLabelValues(nodeAcc.String(), metrics.ErrKindTransport).Inc()

			if !retryableTransport(err) {
				// Not a network failure; just fail fast, unchanged.
				return zero, err
			}

			slog.Error("caught transport error, retrying",
				"node", nodeAcc, "method", method, "attempt", attempt, "error", err)
			if err := waitBackoff(ctx, c, attempt); err != nil {
				return zero, err
			}
			continue
		}

		responseStatus, err := op.MapResponseStatus(resp)
		if err != nil {
			return zero, err
		}

		slog.Debug("received response",
			"node", nodeAcc, "method", method, "attempt", attempt,
			"status", responseStatus, "latency", latency)

		if responseStatus == StatusBusy {
			// Transient node congestion; try again after a delay.
			metrics.RPCErrorsTotal.WithLabelValues(nodeAcc.String(), metrics.ErrKindBusy).Inc()
			c.provider.RecordSuccess(nodeAcc, latency)
			if err := waitBackoff(ctx, c, attempt); err != nil {
				return zero, err
			}
			continue
		}

		c.provider.RecordSuccess(nodeAcc, latency)

		if responseStatus != StatusOk {
			// The network's considered judgment about the request.
			metrics.RPCErrorsTotal.WithLabelValues(nodeAcc.String(), metrics.ErrKindPrecheck).Inc()
			return zero, &PrecheckError{Status: responseStatus, TransactionID: op.TransactionID()}
		}

		return op.MapResponse(resp)
	}
}

func waitBackoff(ctx context.Context, c *Client, attempt int) error {
	delay := c.delayFor(attempt)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

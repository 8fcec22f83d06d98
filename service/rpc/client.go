package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/brojonat/solinspect/service/metrics"
)

// DefaultBackoffs are the delays applied between attempts on a single
// endpoint. Each endpoint gets one initial attempt plus one retry per
// backoff slot; the delay runs between attempts, not after the last
// one.
var DefaultBackoffs = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
}

// RPCError is the terminal failure returned once every endpoint has
// exhausted its retries. It wraps the last observed attempt failure.
type RPCError struct {
	Method  string
	LastErr error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("all RPC endpoints failed for %s: %v", e.Method, e.LastErr)
}

func (e *RPCError) Unwrap() error { return e.LastErr }

// Client retries transport failures with fixed backoff and fails over
// across an ordered list of endpoints. It holds no health state across
// calls: every Request starts from the first endpoint.
type Client struct {
	endpoints []string
	transport *Transport
	backoffs  []time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics

	// sleep is swapped out in tests to observe backoff behavior
	// without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a resilient client over the given endpoints, tried
// in order. The timeout applies per attempt. If m is nil, no metrics
// are recorded.
func NewClient(endpoints []string, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) (*Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("at least one RPC endpoint is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		endpoints: endpoints,
		transport: NewTransport(timeout),
		backoffs:  DefaultBackoffs,
		logger:    logger,
		metrics:   m,
		sleep:     sleepContext,
	}, nil
}

// Request issues a JSON-RPC call, retrying each endpoint up to
// 1+len(backoffs) times before moving to the next. The first
// successful attempt wins; no further endpoints are tried. When every
// endpoint is exhausted it returns an *RPCError wrapping the last
// failure.
func (c *Client) Request(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	var lastErr error

	for _, endpoint := range c.endpoints {
		for attempt := 0; attempt <= len(c.backoffs); attempt++ {
			start := time.Now()
			result, err := c.transport.Call(ctx, endpoint, method, params)
			duration := time.Since(start).Seconds()

			if err == nil {
				c.metrics.RecordRPCCall(method, "success", endpoint, duration)
				c.logger.DebugContext(ctx, "RPC call succeeded",
					"method", method,
					"endpoint", endpoint,
					"attempt", attempt+1,
				)
				return result, nil
			}

			c.metrics.RecordRPCCall(method, "error", endpoint, duration)
			lastErr = err
			c.logger.WarnContext(ctx, "RPC call failed",
				"method", method,
				"endpoint", endpoint,
				"attempt", attempt+1,
				"error", err,
			)

			if attempt < len(c.backoffs) {
				c.metrics.RecordRPCRetry(method, endpoint)
				if err := c.sleep(ctx, c.backoffs[attempt]); err != nil {
					return nil, &RPCError{Method: method, LastErr: err}
				}
			}
		}
		// Endpoint exhausted; move on without an extra delay.
		c.metrics.RecordRPCFailover(method, endpoint)
	}

	return nil, &RPCError{Method: method, LastErr: lastErr}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Package rpc implements a JSON-RPC 2.0 client for Solana nodes with
// retry and multi-endpoint failover.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TransportError describes one failed call attempt against one
// endpoint. Every transport error is retryable by policy; the retry
// and failover decisions belong to Client, never to the transport.
type TransportError struct {
	Endpoint string
	Reason   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Reason)
}

type requestEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// responseEnvelope distinguishes an absent result field (nil
// RawMessage) from an explicit null, which some methods legitimately
// return.
type responseEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// Transport issues a single JSON-RPC call against a single endpoint.
type Transport struct {
	httpClient *http.Client
}

// NewTransport creates a Transport whose calls time out after the
// given duration.
func NewTransport(timeout time.Duration) *Transport {
	return &Transport{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Call performs one blocking JSON-RPC POST and classifies the outcome.
// On success it returns the raw result payload; any other outcome
// (network error, non-200 status, unparseable body, non-null error
// field, missing result field) is a *TransportError.
func (t *Transport) Call(ctx context.Context, endpoint, method string, params []any) (json.RawMessage, error) {
	body, err := json.Marshal(requestEnvelope{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Reason: fmt.Sprintf("marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Reason: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Reason: fmt.Sprintf("post: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Reason: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Endpoint: endpoint,
			Reason:   fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &TransportError{
			Endpoint: endpoint,
			Reason:   fmt.Sprintf("invalid JSON: %s", string(respBody)),
		}
	}

	if len(envelope.Error) > 0 && !bytes.Equal(envelope.Error, []byte("null")) {
		return nil, &TransportError{
			Endpoint: endpoint,
			Reason:   fmt.Sprintf("RPC error: %s", string(envelope.Error)),
		}
	}

	if envelope.Result == nil {
		return nil, &TransportError{
			Endpoint: endpoint,
			Reason:   fmt.Sprintf("malformed response: %s", string(respBody)),
		}
	}

	return envelope.Result, nil
}

package solana

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// TokenProgramID is the SPL Token program; getTokenAccountsByOwner is
// scoped to accounts it owns.
const TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// Commitment is how finalized a queried chain state must be.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

// Valid reports whether c is one of the three levels the RPC accepts.
func (c Commitment) Valid() bool {
	switch c {
	case CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized:
		return true
	}
	return false
}

// Requester is the RPC surface the inspector needs. It is satisfied by
// *rpc.Client and mocked in tests.
type Requester interface {
	Request(ctx context.Context, method string, params []any) (json.RawMessage, error)
}

// Inspector runs the read-only wallet queries against a resilient RPC
// client and assembles the final report.
type Inspector struct {
	rpc    Requester
	logger *slog.Logger
}

// NewInspector creates an Inspector. A nil logger discards logs.
func NewInspector(requester Requester, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Inspector{rpc: requester, logger: logger}
}

// InspectParams control a single inspection run.
type InspectParams struct {
	Address          string
	Commitment       Commitment
	Limit            int
	SkipTokens       bool
	SkipTransactions bool
}

// Inspect validates the address, then issues the balance, token, and
// signature queries sequentially. Any failure aborts the whole run: a
// report is only produced when every requested query succeeds.
func (i *Inspector) Inspect(ctx context.Context, params InspectParams) (*Report, error) {
	if err := ValidateAddress(params.Address); err != nil {
		return nil, err
	}

	lamports, err := i.getBalance(ctx, params.Address, params.Commitment)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Address:      params.Address,
		Lamports:     lamports,
		SOL:          LamportsToSOL(lamports),
		Tokens:       []TokenHolding{},
		Transactions: []TransactionSummary{},
	}

	if !params.SkipTokens {
		report.Tokens, err = i.getTokenHoldings(ctx, params.Address, params.Commitment)
		if err != nil {
			return nil, err
		}
	}

	if !params.SkipTransactions {
		report.Transactions, err = i.getSignatures(ctx, params.Address, params.Limit, params.Commitment)
		if err != nil {
			return nil, err
		}
	}

	i.logger.DebugContext(ctx, "inspection complete",
		"address", params.Address,
		"lamports", report.Lamports,
		"tokens", len(report.Tokens),
		"transactions", len(report.Transactions),
	)

	return report, nil
}

func (i *Inspector) getBalance(ctx context.Context, address string, commitment Commitment) (uint64, error) {
	result, err := i.rpc.Request(ctx, "getBalance", []any{
		address,
		map[string]any{"commitment": string(commitment)},
	})
	if err != nil {
		return 0, fmt.Errorf("getBalance: %w", err)
	}
	return DecodeBalance(result)
}

func (i *Inspector) getTokenHoldings(ctx context.Context, address string, commitment Commitment) ([]TokenHolding, error) {
	result, err := i.rpc.Request(ctx, "getTokenAccountsByOwner", []any{
		address,
		map[string]any{"programId": TokenProgramID},
		map[string]any{"encoding": "jsonParsed", "commitment": string(commitment)},
	})
	if err != nil {
		return nil, fmt.Errorf("getTokenAccountsByOwner: %w", err)
	}
	return DecodeTokenAccounts(result)
}

func (i *Inspector) getSignatures(ctx context.Context, address string, limit int, commitment Commitment) ([]TransactionSummary, error) {
	result, err := i.rpc.Request(ctx, "getSignaturesForAddress", []any{
		address,
		map[string]any{"limit": limit, "commitment": string(commitment)},
	})
	if err != nil {
		return nil, fmt.Errorf("getSignaturesForAddress: %w", err)
	}
	return DecodeSignatures(result)
}

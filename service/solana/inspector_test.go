package solana

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRequester is behavior-focused: it returns canned results per
// method and records the order of methods called.
type mockRequester struct {
	results map[string]json.RawMessage
	errs    map[string]error
	calls   []string
}

func (m *mockRequester) Request(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	m.calls = append(m.calls, method)
	if err := m.errs[method]; err != nil {
		return nil, err
	}
	return m.results[method], nil
}

const testAddress = "11111111111111111111111111111111"

func TestInspect_FullRun(t *testing.T) {
	mock := &mockRequester{
		results: map[string]json.RawMessage{
			"getBalance": json.RawMessage(`{"value":5000000000}`),
			"getTokenAccountsByOwner": json.RawMessage(`{"value":[
				{"pubkey":"acct","account":{"data":{"parsed":{"info":{
					"mint":"mint","tokenAmount":{"amount":"100","decimals":2,"uiAmountString":"1"}}}}}}
			]}`),
			"getSignaturesForAddress": json.RawMessage(`[{"signature":"sig","blockTime":1700000000,"confirmationStatus":"finalized"}]`),
		},
	}

	inspector := NewInspector(mock, nil)
	report, err := inspector.Inspect(context.Background(), InspectParams{
		Address:    testAddress,
		Commitment: CommitmentConfirmed,
		Limit:      10,
	})

	require.NoError(t, err)
	assert.Equal(t, testAddress, report.Address)
	assert.Equal(t, uint64(5000000000), report.Lamports)
	assert.Equal(t, 5.0, report.SOL)
	assert.Equal(t, "5", FormatSOL(report.SOL))
	require.Len(t, report.Tokens, 1)
	require.Len(t, report.Transactions, 1)

	// The three queries run sequentially, balance first.
	assert.Equal(t, []string{"getBalance", "getTokenAccountsByOwner", "getSignaturesForAddress"}, mock.calls)
}

func TestInspect_InvalidAddressBeforeAnyRPC(t *testing.T) {
	mock := &mockRequester{}
	inspector := NewInspector(mock, nil)

	_, err := inspector.Inspect(context.Background(), InspectParams{Address: "not-base58-0"})
	require.ErrorIs(t, err, ErrInvalidAddress)
	assert.Empty(t, mock.calls)
}

func TestInspect_BalanceFailureAbortsRun(t *testing.T) {
	mock := &mockRequester{
		errs: map[string]error{"getBalance": errors.New("all RPC endpoints failed")},
	}
	inspector := NewInspector(mock, nil)

	_, err := inspector.Inspect(context.Background(), InspectParams{
		Address:    testAddress,
		Commitment: CommitmentConfirmed,
	})

	require.Error(t, err)
	// The token and signature queries must never be attempted.
	assert.Equal(t, []string{"getBalance"}, mock.calls)
}

func TestInspect_TokenFailureAbortsRun(t *testing.T) {
	mock := &mockRequester{
		results: map[string]json.RawMessage{
			"getBalance": json.RawMessage(`{"value":1}`),
		},
		errs: map[string]error{"getTokenAccountsByOwner": errors.New("all RPC endpoints failed")},
	}
	inspector := NewInspector(mock, nil)

	_, err := inspector.Inspect(context.Background(), InspectParams{
		Address:    testAddress,
		Commitment: CommitmentConfirmed,
	})

	// No partial report even though the balance query succeeded.
	require.Error(t, err)
	assert.Equal(t, []string{"getBalance", "getTokenAccountsByOwner"}, mock.calls)
}

func TestInspect_SkipFlags(t *testing.T) {
	mock := &mockRequester{
		results: map[string]json.RawMessage{
			"getBalance": json.RawMessage(`{"value":1}`),
		},
	}
	inspector := NewInspector(mock, nil)

	report, err := inspector.Inspect(context.Background(), InspectParams{
		Address:          testAddress,
		Commitment:       CommitmentConfirmed,
		SkipTokens:       true,
		SkipTransactions: true,
	})

	require.NoError(t, err)
	assert.Empty(t, report.Tokens)
	assert.Empty(t, report.Transactions)
	assert.Equal(t, []string{"getBalance"}, mock.calls)
}

func TestCommitment_Valid(t *testing.T) {
	assert.True(t, CommitmentProcessed.Valid())
	assert.True(t, CommitmentConfirmed.Valid())
	assert.True(t, CommitmentFinalized.Valid())
	assert.False(t, Commitment("eventual").Valid())
	assert.False(t, Commitment("").Valid())
}

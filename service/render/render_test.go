package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brojonat/solinspect/service/solana"
)

func testReport() *solana.Report {
	return &solana.Report{
		Address:  "11111111111111111111111111111111",
		Lamports: 5000000000,
		SOL:      5,
		Tokens: []solana.TokenHolding{
			{
				Mint:         "mint1111",
				TokenAccount: "acct1111",
				AmountRaw:    "123456789012345",
				Decimals:     9,
				UIAmount:     "123456.789012345",
			},
		},
		Transactions: []solana.TransactionSummary{
			{
				Signature:          "sig-1",
				BlockTime:          "2023-11-14T22:13:20Z",
				ConfirmationStatus: "finalized",
				Err:                "",
			},
			{
				Signature: "sig-2",
				BlockTime: solana.NotAvailable,
				Err:       `{"InstructionError":[0,{"Custom":1}]}`,
			},
		},
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), Options{JSON: true}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "11111111111111111111111111111111", decoded["address"])
	assert.Equal(t, float64(5000000000), decoded["sol_balance_lamports"])
	assert.Equal(t, float64(5), decoded["sol_balance_sol"])
	assert.Len(t, decoded["tokens"], 1)
	assert.Len(t, decoded["transactions"], 2)
}

func TestRender_JQFilter(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), Options{JQ: ".sol_balance_lamports"})
	require.NoError(t, err)
	assert.Equal(t, "5000000000\n", buf.String())
}

func TestRender_JQInvalidExpression(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), Options{JQ: ".["})
	require.Error(t, err)
}

func TestRender_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), Options{}))

	out := buf.String()
	assert.Contains(t, out, "Solana Wallet Inspector")
	assert.Contains(t, out, "Address: 11111111111111111111111111111111")
	assert.Contains(t, out, "SOL Balance: 5 SOL (5000000000 lamports)")
	assert.Contains(t, out, "SPL Tokens: 1")
	assert.Contains(t, out, "mint1111")
	assert.Contains(t, out, "123456789012345")
	assert.Contains(t, out, "Recent Transactions: 2")
	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "\033[2J")
}

func TestRender_HumanClearScreen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), Options{ClearScreen: true}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\033[2J\033[H")))
}

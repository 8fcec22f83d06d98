package solana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NotAvailable is the sentinel rendered for a missing block time.
const NotAvailable = "N/A"

// Response shapes for the three RPC methods we issue. Optional fields
// are pointers so absence is distinguishable from zero values; absence
// handling is decided per field in the decoders below, never by
// implicit null propagation.

type balanceResult struct {
	Value *int64 `json:"value"`
}

type tokenAccountsResult struct {
	Value []tokenAccountEntry `json:"value"`
}

type tokenAccountEntry struct {
	Pubkey  *string `json:"pubkey"`
	Account struct {
		Data struct {
			Parsed struct {
				Info struct {
					Mint        *string     `json:"mint"`
					TokenAmount tokenAmount `json:"tokenAmount"`
				} `json:"info"`
			} `json:"parsed"`
		} `json:"data"`
	} `json:"account"`
}

type tokenAmount struct {
	Amount         *string  `json:"amount"`
	Decimals       *int     `json:"decimals"`
	UIAmount       *float64 `json:"uiAmount"`
	UIAmountString *string  `json:"uiAmountString"`
}

type signatureEntry struct {
	Signature          *string         `json:"signature"`
	BlockTime          *int64          `json:"blockTime"`
	ConfirmationStatus *string         `json:"confirmationStatus"`
	Err                json.RawMessage `json:"err"`
}

// DecodeBalance extracts the lamports value from a getBalance result.
// A missing value field defaults to 0; a present negative value is a
// decode error rather than being clamped, so bad node data stays
// auditable.
func DecodeBalance(raw json.RawMessage) (uint64, error) {
	var result balanceResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return 0, fmt.Errorf("decode getBalance result: %w", err)
	}
	if result.Value == nil {
		return 0, nil
	}
	if *result.Value < 0 {
		return 0, fmt.Errorf("decode getBalance result: negative lamports value %d", *result.Value)
	}
	return uint64(*result.Value), nil
}

// DecodeTokenAccounts maps a getTokenAccountsByOwner result into token
// holdings, preserving input order. Records missing any of the token
// account address, mint, raw amount, or decimals are dropped, not
// errored. The pre-formatted uiAmountString is preferred; a numeric
// uiAmount is stringified as fallback.
func DecodeTokenAccounts(raw json.RawMessage) ([]TokenHolding, error) {
	var result tokenAccountsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode getTokenAccountsByOwner result: %w", err)
	}

	holdings := make([]TokenHolding, 0, len(result.Value))
	for _, entry := range result.Value {
		info := entry.Account.Data.Parsed.Info
		amount := info.TokenAmount
		if entry.Pubkey == nil || info.Mint == nil || amount.Amount == nil || amount.Decimals == nil {
			continue
		}

		ui := ""
		switch {
		case amount.UIAmountString != nil:
			ui = *amount.UIAmountString
		case amount.UIAmount != nil:
			ui = strconv.FormatFloat(*amount.UIAmount, 'f', -1, 64)
		}

		holdings = append(holdings, TokenHolding{
			Mint:         *info.Mint,
			TokenAccount: *entry.Pubkey,
			AmountRaw:    *amount.Amount,
			Decimals:     *amount.Decimals,
			UIAmount:     ui,
		})
	}
	return holdings, nil
}

// DecodeSignatures maps a getSignaturesForAddress result into
// transaction summaries, preserving input order without deduplication.
func DecodeSignatures(raw json.RawMessage) ([]TransactionSummary, error) {
	var entries []signatureEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode getSignaturesForAddress result: %w", err)
	}

	summaries := make([]TransactionSummary, 0, len(entries))
	for _, entry := range entries {
		summary := TransactionSummary{
			BlockTime: blockTimeString(entry.BlockTime),
			Err:       errSummary(entry.Err),
		}
		if entry.Signature != nil {
			summary.Signature = *entry.Signature
		}
		if entry.ConfirmationStatus != nil {
			summary.ConfirmationStatus = *entry.ConfirmationStatus
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func blockTimeString(blockTime *int64) string {
	if blockTime == nil {
		return NotAvailable
	}
	return time.Unix(*blockTime, 0).UTC().Format(time.RFC3339)
}

// errSummary compacts a node-reported error object into a stable
// single-line form. Absent or null errors become the empty string.
func errSummary(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Package render turns an inspection report into terminal output:
// either an aligned text table or JSON, optionally filtered with jq
// expressions.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	"github.com/brojonat/solinspect/service/solana"
)

// Options control the output format.
type Options struct {
	JSON bool
	// JQ is an optional gojq expression applied to the JSON form of
	// the report. Implies JSON output.
	JQ string
	// ClearScreen prefixes human output with an ANSI clear, for the
	// interactive terminal case.
	ClearScreen bool
}

// Render writes the report to w in the requested format.
func Render(w io.Writer, report *solana.Report, opts Options) error {
	if opts.JSON || opts.JQ != "" {
		return renderJSON(w, report, opts.JQ)
	}
	return renderHuman(w, report, opts.ClearScreen)
}

func renderJSON(w io.Writer, report *solana.Report, jq string) error {
	if jq == "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	query, err := gojq.Parse(jq)
	if err != nil {
		return fmt.Errorf("parse jq expression %q: %w", jq, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("compile jq expression %q: %w", jq, err)
	}

	// gojq operates on any-typed values, so round-trip the report
	// through JSON first.
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("unmarshal report: %w", err)
	}

	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("run jq expression: %w", err)
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal jq output: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	}
	return nil
}

func renderHuman(w io.Writer, report *solana.Report, clearScreen bool) error {
	if clearScreen {
		fmt.Fprint(w, "\033[2J\033[H")
	}

	fmt.Fprintln(w, "Solana Wallet Inspector")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintf(w, "Address: %s\n", report.Address)
	fmt.Fprintf(w, "SOL Balance: %s SOL (%d lamports)\n",
		solana.FormatSOL(report.SOL), report.Lamports)

	fmt.Fprintf(w, "SPL Tokens: %d\n", len(report.Tokens))
	if len(report.Tokens) > 0 {
		mintW, acctW := len("Mint"), len("Token Account")
		for _, token := range report.Tokens {
			mintW = max(mintW, len(token.Mint))
			acctW = max(acctW, len(token.TokenAccount))
		}
		fmt.Fprintf(w, "%-*s  %-*s  %12s  %3s  %12s\n",
			mintW, "Mint", acctW, "Token Account", "Amount Raw", "Dec", "UI Amount")
		for _, token := range report.Tokens {
			fmt.Fprintf(w, "%-*s  %-*s  %12s  %3d  %12s\n",
				mintW, token.Mint, acctW, token.TokenAccount,
				token.AmountRaw, token.Decimals, token.UIAmount)
		}
	}

	fmt.Fprintf(w, "Recent Transactions: %d\n", len(report.Transactions))
	if len(report.Transactions) > 0 {
		sigW := len("Signature")
		for _, txn := range report.Transactions {
			sigW = max(sigW, len(txn.Signature))
		}
		fmt.Fprintf(w, "%-*s  %-25s  %-10s  %s\n",
			sigW, "Signature", "Block Time (UTC)", "Status", "Err")
		for _, txn := range report.Transactions {
			fmt.Fprintf(w, "%-*s  %-25s  %-10s  %s\n",
				sigW, txn.Signature, txn.BlockTime, txn.ConfirmationStatus, txn.Err)
		}
	}

	return nil
}

package solana

// TokenHolding is one SPL token account owned by the inspected wallet.
// A wallet may hold several accounts for the same mint. AmountRaw is
// kept as a decimal string so amounts above 2^53 never lose precision.
type TokenHolding struct {
	Mint         string `json:"mint"`
	TokenAccount string `json:"token_account"`
	AmountRaw    string `json:"amount_raw"`
	Decimals     int    `json:"decimals"`
	UIAmount     string `json:"ui_amount"`
}

// TransactionSummary is one entry from the wallet's recent signature
// history. BlockTime is an RFC 3339 UTC timestamp, or NotAvailable
// when the node reported none. Err is empty for successful
// transactions, otherwise a compact JSON encoding of the node's error
// object.
type TransactionSummary struct {
	Signature          string `json:"signature"`
	BlockTime          string `json:"block_time"`
	ConfirmationStatus string `json:"confirmation_status"`
	Err                string `json:"err"`
}

// Report is the final artifact of one inspection run, built once and
// read-only thereafter.
type Report struct {
	Address      string               `json:"address"`
	Lamports     uint64               `json:"sol_balance_lamports"`
	SOL          float64              `json:"sol_balance_sol"`
	Tokens       []TokenHolding       `json:"tokens"`
	Transactions []TransactionSummary `json:"transactions"`
}

package solana

import (
	"strconv"
	"strings"
)

// LamportsPerSOL is the fixed native-unit divisor.
const LamportsPerSOL = 1_000_000_000

// LamportsToSOL converts the smallest native denomination to a display
// value.
func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / LamportsPerSOL
}

// FormatSOL renders a SOL amount at full lamport precision with
// trailing zeros and a trailing decimal point stripped, so
// 1_000_000_000 lamports prints as "1" and 1_500_000_000 as "1.5".
func FormatSOL(sol float64) string {
	text := strconv.FormatFloat(sol, 'f', 9, 64)
	text = strings.TrimRight(text, "0")
	return strings.TrimSuffix(text, ".")
}

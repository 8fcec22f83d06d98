// Package base58 implements the Bitcoin-style base58 codec used for
// Solana addresses and signatures.
package base58

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is the 58-character base58 alphabet. Note the absence of
// 0, O, I, and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrEmptyInput is returned when decoding an empty string.
var ErrEmptyInput = errors.New("empty base58 string")

var radix = big.NewInt(58)

// Decode interprets s as a big-endian base-58 number and returns its
// minimal big-endian byte representation, with one leading zero byte
// re-prepended for every leading '1' in the input (the numeric
// conversion alone drops them).
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	num := new(big.Int)
	for _, ch := range s {
		idx := strings.IndexRune(Alphabet, ch)
		if idx == -1 {
			return nil, fmt.Errorf("invalid base58 character: %q", ch)
		}
		num.Mul(num, radix)
		num.Add(num, big.NewInt(int64(idx)))
	}

	var combined []byte
	if num.Sign() > 0 {
		combined = num.Bytes()
	}

	pad := 0
	for pad < len(s) && s[pad] == '1' {
		pad++
	}

	out := make([]byte, pad+len(combined))
	copy(out[pad:], combined)
	return out, nil
}

// Encode is the companion encoder to Decode. Leading zero bytes map to
// leading '1' characters.
func Encode(b []byte) string {
	pad := 0
	for pad < len(b) && b[pad] == 0 {
		pad++
	}

	num := new(big.Int).SetBytes(b[pad:])
	mod := new(big.Int)

	var digits []byte
	for num.Sign() > 0 {
		num.DivMod(num, radix, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	var sb strings.Builder
	sb.Grow(pad + len(digits))
	for i := 0; i < pad; i++ {
		sb.WriteByte('1')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

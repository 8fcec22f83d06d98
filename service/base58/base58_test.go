package base58

import (
	"testing"

	mrtron "github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ValidAddress(t *testing.T) {
	// The SPL token program id, a well-formed 32-byte key.
	raw, err := Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode("")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestDecode_InvalidCharacter(t *testing.T) {
	// '0', 'O', 'I', and 'l' are excluded from the alphabet.
	for _, in := range []string{"0", "abcO", "Il", "hello world"} {
		_, err := Decode(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecode_LeadingOnes(t *testing.T) {
	// All-'1' input is the leading-zero convention: each '1' is one
	// zero byte, and the numeric part contributes nothing.
	raw, err := Decode("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 32), raw)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"11111111111111111111111111111111",
		"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		"So11111111111111111111111111111111111111112",
		"2",
		"1",
		"15T",
	}
	for _, in := range inputs {
		raw, err := Decode(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, Encode(raw), "input %q", in)
	}
}

func TestDecode_MatchesReferenceImplementation(t *testing.T) {
	// Cross-check against mr-tron/base58, the codec the wider Solana
	// ecosystem uses.
	inputs := []string{
		"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		"MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr",
		"1117qANt7Aa9TSyzuvrMHTgEt3rnq1eBcdbBEMjjW",
		"5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7",
	}
	for _, in := range inputs {
		want, err := mrtron.Decode(in)
		require.NoError(t, err, "input %q", in)
		got, err := Decode(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Equal(t, mrtron.Encode(want), Encode(got), "input %q", in)
	}
}

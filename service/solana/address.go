package solana

import (
	"errors"
	"fmt"

	"github.com/brojonat/solinspect/service/base58"
)

// PublicKeyLength is the byte length of a Solana public key.
const PublicKeyLength = 32

// ErrInvalidAddress marks addresses that are not well-formed Solana
// public keys. Callers distinguish it from RPC failures with errors.Is.
var ErrInvalidAddress = errors.New("invalid address")

// ValidateAddress checks that addr decodes via base58 to exactly 32
// bytes. It performs no I/O and must pass before any RPC call is made.
func ValidateAddress(addr string) error {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) != PublicKeyLength {
		return fmt.Errorf("%w: decoded to %d bytes, expected %d", ErrInvalidAddress, len(decoded), PublicKeyLength)
	}
	return nil
}

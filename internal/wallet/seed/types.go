package seed

import "github.com/pkg/errors"

const (
	// MnemonicEntropyBits is the entropy width of generated mnemonics (12 words).
	MnemonicEntropyBits = 128

	// Size is the length of a BIP-39 seed in bytes (512 bits).
	Size = 64
)

var (
	// ErrEntropySourceUnavailable is returned when the secure random source cannot be read.
	ErrEntropySourceUnavailable = errors.New("entropy source unavailable")

	// ErrInvalidMnemonic is returned for phrases failing the BIP-39 word list or checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// Seed is the key derivation input expanded from a mnemonic.
// It must never leave the derivation cycle; call Clear once done.
type Seed []byte

// Clear zeroes the seed in place.
func (s Seed) Clear() {
	clear(s)
}

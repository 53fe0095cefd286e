package address

import "github.com/pkg/errors"

const (
	// PayloadSize is the length of a secp256k1 address payload (low 20 bytes of the hash).
	PayloadSize = 20

	uncompressedPublicKeySize = 65
	rawPublicKeySize          = 64
	uncompressedPrefix        = 0x04
)

// ErrInvalidAddress is returned by validators for addresses failing the network's format rules.
var ErrInvalidAddress = errors.New("invalid address")

// Validator checks an address against a network's canonical format.
type Validator func(address string) error

package seed

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// GenerateMnemonic creates a new 12-word BIP-39 mnemonic from the OS secure random source.
func GenerateMnemonic() (string, error) {
	return GenerateMnemonicFrom(rand.Reader)
}

// GenerateMnemonicFrom creates a 12-word BIP-39 mnemonic from entropy read from r.
// A short read or read error is fatal; there is no fallback source.
func GenerateMnemonicFrom(r io.Reader) (string, error) {
	entropy := make([]byte, MnemonicEntropyBits/8)
	defer clear(entropy)

	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", errors.Wrapf(ErrEntropySourceUnavailable, "failed to read entropy: %v", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode mnemonic")
	}

	return mnemonic, nil
}

// ValidateMnemonic checks word count, word list membership and checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

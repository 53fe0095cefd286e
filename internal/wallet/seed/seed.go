package seed

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// FromMnemonic expands a mnemonic and optional passphrase into a 64-byte seed.
// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
func FromMnemonic(mnemonic string, passphrase string) (Seed, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidMnemonic, err.Error())
	}

	if len(seed) != Size {
		clear(seed)
		return nil, errors.Errorf("unexpected seed length %d", len(seed))
	}

	return Seed(seed), nil
}

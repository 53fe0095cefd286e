package derive

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// BIP-32 seeds are between 128 and 512 bits.
const (
	minSeedSize = 16
	maxSeedSize = 64
)

// Secp256k1 derives a 32-byte secp256k1 scalar from seed along path (BIP-32).
// WARNING: Caller must clear the private key after use
func Secp256k1(seed []byte, path Path) ([]byte, error) {
	if len(seed) < minSeedSize || len(seed) > maxSeedSize {
		return nil, errors.Wrapf(ErrMalformedKeyMaterial, "seed length %d", len(seed))
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedKeyMaterial, "failed to create master key: %v", err)
	}

	key := masterKey
	for _, index := range path {
		child, err := key.NewChildKey(index)
		clear(key.Key)
		clear(key.ChainCode)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedKeyMaterial, "failed to derive child key at index %d: %v", index, err)
		}
		key = child
	}
	defer clear(key.ChainCode)
	defer clear(key.Key)

	if !key.IsPrivate {
		return nil, errors.Wrap(ErrMalformedKeyMaterial, "derived key is not private")
	}

	return normalizeScalar(key.Key)
}

// normalizeScalar copies raw into a fresh 32-byte buffer.
// bip32 keys may carry a leading 0x00 (33 bytes) or drop leading zero bytes.
func normalizeScalar(raw []byte) ([]byte, error) {
	if len(raw) == PrivateKeySize+1 && raw[0] == 0 {
		raw = raw[1:]
	}

	if len(raw) == 0 || len(raw) > PrivateKeySize {
		return nil, errors.Wrapf(ErrMalformedKeyMaterial, "private key length %d", len(raw))
	}

	out := make([]byte, PrivateKeySize)
	copy(out[PrivateKeySize-len(raw):], raw)

	return out, nil
}

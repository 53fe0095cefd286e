package derive

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/pkg/errors"
)

// SLIP-0010 master key HMAC key for ed25519.
var ed25519Curve = []byte("ed25519 seed")

// Ed25519 derives a 32-byte ed25519 private key (seed form) from seed along path (SLIP-0010).
// Every segment of path must be hardened.
// WARNING: Caller must clear the private key after use
func Ed25519(seed []byte, path Path) ([]byte, error) {
	if !path.IsHardenedOnly() {
		return nil, errors.Wrapf(ErrNonHardenedSegment, "path %s", path)
	}

	key, chainCode := slip10Split(hmacSHA512(ed25519Curve, seed))
	defer func() {
		clear(key)
		clear(chainCode)
	}()

	data := make([]byte, 1+PrivateKeySize+4)
	defer clear(data)

	for _, index := range path {
		// 0x00 || key || ser32(index)
		data[0] = 0
		copy(data[1:], key)
		binary.BigEndian.PutUint32(data[1+PrivateKeySize:], index)

		childKey, childChainCode := slip10Split(hmacSHA512(chainCode, data))
		clear(key)
		clear(chainCode)
		key, chainCode = childKey, childChainCode
	}

	if len(key) != PrivateKeySize {
		return nil, errors.Wrapf(ErrMalformedKeyMaterial, "private key length %d", len(key))
	}

	out := make([]byte, PrivateKeySize)
	copy(out, key)

	return out, nil
}

func hmacSHA512(key []byte, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func slip10Split(digest []byte) ([]byte, []byte) {
	return digest[:PrivateKeySize], digest[PrivateKeySize:]
}

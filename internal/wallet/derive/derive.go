// Package derive turns a BIP-39 seed into the private key of a network's derivation path.
//
// secp256k1 networks follow BIP-32 along the configured BIP-44 path. ed25519 networks
// follow SLIP-0010, which only defines hardened children, so any other path shape is
// rejected before key material is computed.
package derive

import (
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/wallet/network"
)

// PrivateKeySize is the length of every private key returned by this package.
const PrivateKeySize = 32

var (
	// ErrMalformedKeyMaterial is returned when derivation yields a key of unexpected shape.
	ErrMalformedKeyMaterial = errors.New("malformed key material")

	// ErrNonHardenedSegment is returned when an ed25519 path contains a non-hardened index.
	ErrNonHardenedSegment = errors.New("ed25519 derivation requires hardened-only path segments")

	// ErrInvalidPath is returned for path strings that cannot be parsed.
	ErrInvalidPath = errors.New("invalid derivation path")
)

// ForNetwork derives the private key of n from seed.
// WARNING: Caller must clear the private key after use
func ForNetwork(seed []byte, n network.Network) ([]byte, error) {
	params, err := network.Lookup(n)
	if err != nil {
		return nil, err
	}

	return PrivateKey(seed, params)
}

// PrivateKey derives the private key described by params from seed.
// WARNING: Caller must clear the private key after use
func PrivateKey(seed []byte, params network.Params) ([]byte, error) {
	path, err := ParsePath(params.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "network %s", params.Network)
	}

	switch params.Curve {
	case network.CurveSecp256k1:
		return Secp256k1(seed, path)
	case network.CurveEd25519:
		return Ed25519(seed, path)
	default:
		return nil, errors.Wrapf(network.ErrUnsupportedNetwork, "%q has no curve %q", params.Network, params.Curve)
	}
}

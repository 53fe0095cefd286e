// Package address computes public keys and renders network specific addresses.
package address

import (
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/wallet/network"
)

// PublicKey computes the public key of privateKey on n's curve.
// secp256k1 keys are returned uncompressed (65 bytes), ed25519 keys raw (32 bytes).
func PublicKey(privateKey []byte, n network.Network) ([]byte, error) {
	params, err := network.Lookup(n)
	if err != nil {
		return nil, err
	}

	switch params.Curve {
	case network.CurveSecp256k1:
		return secp256k1PublicKey(privateKey)
	case network.CurveEd25519:
		return ed25519PublicKey(privateKey)
	default:
		return nil, errors.Wrapf(network.ErrUnsupportedNetwork, "%q has no curve %q", n, params.Curve)
	}
}

// Encode renders publicKey as an address of n.
func Encode(publicKey []byte, n network.Network) (string, error) {
	params, err := network.Lookup(n)
	if err != nil {
		return "", err
	}

	switch params.Encoding {
	case network.EncodingHexHash:
		payload, err := hashPayload(publicKey, params)
		if err != nil {
			return "", err
		}
		return encodeHex(payload), nil
	case network.EncodingBase58Check:
		payload, err := hashPayload(publicKey, params)
		if err != nil {
			return "", err
		}
		return encodeTron(payload), nil
	case network.EncodingEd25519Base58:
		return encodeSolana(publicKey)
	default:
		return "", errors.Wrapf(network.ErrUnsupportedNetwork, "%q has no encoding %q", n, params.Encoding)
	}
}

// FromPrivateKey computes the public key and address of privateKey on n.
func FromPrivateKey(privateKey []byte, n network.Network) ([]byte, string, error) {
	publicKey, err := PublicKey(privateKey, n)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to compute public key")
	}

	addr, err := Encode(publicKey, n)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to encode address")
	}

	return publicKey, addr, nil
}

// ValidatorFor returns the format validator registered for n.
// The second result is false for networks without one (ed25519 networks).
func ValidatorFor(n network.Network) (Validator, bool) {
	params, err := network.Lookup(n)
	if err != nil {
		return nil, false
	}

	switch params.Encoding {
	case network.EncodingHexHash:
		return validateHex, true
	case network.EncodingBase58Check:
		return validateTron, true
	default:
		return nil, false
	}
}

// Validate checks addr against n's validator. Networks without a validator accept any address.
func Validate(addr string, n network.Network) error {
	if !n.IsSupported() {
		return errors.Wrapf(network.ErrUnsupportedNetwork, "%q", string(n))
	}

	validate, ok := ValidatorFor(n)
	if !ok {
		return nil
	}

	return validate(addr)
}

package address

import (
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/wallet/derive"
)

// ed25519PublicKey returns the raw 32 byte public key of an ed25519 private key in seed form.
func ed25519PublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != ed25519.SeedSize {
		return nil, errors.Wrapf(derive.ErrMalformedKeyMaterial, "ed25519 private key length %d", len(privateKey))
	}

	expanded := solana.PrivateKey(ed25519.NewKeyFromSeed(privateKey))
	defer clear(expanded)

	publicKey := expanded.PublicKey()

	return publicKey.Bytes(), nil
}

// encodeSolana renders the raw public key as base58, the canonical Solana account address.
func encodeSolana(publicKey []byte) (string, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return "", errors.Wrapf(derive.ErrMalformedKeyMaterial, "ed25519 public key length %d", len(publicKey))
	}

	return solana.PublicKeyFromBytes(publicKey).String(), nil
}

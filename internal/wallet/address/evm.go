package address

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/wallet/derive"
	"github/chapool/cngn-go/internal/wallet/network"
)

// secp256k1PublicKey returns the uncompressed (65 byte, 0x04 prefixed) public key of privateKey.
func secp256k1PublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != derive.PrivateKeySize {
		return nil, errors.Wrapf(derive.ErrMalformedKeyMaterial, "private key length %d", len(privateKey))
	}

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(derive.ErrMalformedKeyMaterial, err.Error())
	}
	defer zeroScalar(ecdsaPrivateKey.D)

	return crypto.FromECDSAPub(&ecdsaPrivateKey.PublicKey), nil
}

// zeroScalar wipes the backing words of d, then resets it to zero.
func zeroScalar(d *big.Int) {
	clear(d.Bits())
	d.SetInt64(0)
}

// hashPayload drops the format prefix, hashes the raw 64 byte public key and keeps the low 20 bytes.
func hashPayload(publicKey []byte, params network.Params) ([]byte, error) {
	raw := publicKey
	if len(raw) == uncompressedPublicKeySize && raw[0] == uncompressedPrefix {
		raw = raw[1:]
	}

	if len(raw) != rawPublicKeySize {
		return nil, errors.Wrapf(derive.ErrMalformedKeyMaterial, "secp256k1 public key length %d", len(publicKey))
	}

	if params.Hash == nil {
		return nil, errors.Wrapf(network.ErrUnsupportedNetwork, "%q has no address hash", params.Network)
	}

	digest := params.Hash(raw)
	if len(digest) < PayloadSize {
		return nil, errors.Wrapf(derive.ErrMalformedKeyMaterial, "address digest length %d", len(digest))
	}

	return digest[len(digest)-PayloadSize:], nil
}

func encodeHex(payload []byte) string {
	return "0x" + hex.EncodeToString(payload)
}

// validateHex accepts 0x-prefixed, 40 hex character, lowercase addresses.
func validateHex(address string) error {
	if !strings.HasPrefix(address, "0x") || len(address) != 2+2*common.AddressLength {
		return errors.Wrapf(ErrInvalidAddress, "%q is not a 0x-prefixed 20 byte hex address", address)
	}

	if !common.IsHexAddress(address) {
		return errors.Wrapf(ErrInvalidAddress, "%q is not a hex address", address)
	}

	if address != strings.ToLower(address) {
		return errors.Wrapf(ErrInvalidAddress, "%q is not lowercase", address)
	}

	return nil
}

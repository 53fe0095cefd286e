package cngn

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/base64"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/ssh"
)

const (
	boxNonceSize     = 24
	boxPublicKeySize = 32
)

// ParseOpenSSHPrivateKey parses an unencrypted OpenSSH ed25519 private key.
// Literal "\n" sequences are accepted so the key can be passed through a single-line env var.
func ParseOpenSSHPrivateKey(pemKey string) (ed25519.PrivateKey, error) {
	pemKey = strings.ReplaceAll(strings.TrimSpace(pemKey), `\n`, "\n")

	raw, err := ssh.ParseRawPrivateKey([]byte(pemKey))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}

	switch key := raw.(type) {
	case *ed25519.PrivateKey:
		return *key, nil
	case ed25519.PrivateKey:
		return key, nil
	default:
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "unexpected key type %T", raw)
	}
}

// Curve25519PrivateKey converts an ed25519 signing key into the X25519 scalar used by NaCl box.
func Curve25519PrivateKey(key ed25519.PrivateKey) (*[32]byte, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "expected %d bytes, got %d", ed25519.PrivateKeySize, len(key))
	}

	digest := sha512.Sum512(key.Seed())
	defer clear(digest[:])

	digest[0] &= 248
	digest[31] &= 127
	digest[31] |= 64

	var scalar [32]byte
	copy(scalar[:], digest[:32])

	return &scalar, nil
}

// Curve25519PublicKey returns the X25519 public key matching scalar.
func Curve25519PublicKey(scalar *[32]byte) (*[32]byte, error) {
	pub, err := curve25519.X25519(scalar[:], curve25519.Basepoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute curve25519 public key")
	}

	var out [32]byte
	copy(out[:], pub)

	return &out, nil
}

// OpenBox decrypts a base64 "nonce || ciphertext || ephemeral public key" envelope.
func OpenBox(privateKey *[32]byte, encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(ErrDecryptResponse, err.Error())
	}

	if len(raw) < boxNonceSize+box.Overhead+boxPublicKeySize {
		return nil, errors.Wrapf(ErrDecryptResponse, "envelope too short (%d bytes)", len(raw))
	}

	var nonce [boxNonceSize]byte
	copy(nonce[:], raw[:boxNonceSize])

	var ephemeral [boxPublicKeySize]byte
	copy(ephemeral[:], raw[len(raw)-boxPublicKeySize:])

	plaintext, ok := box.Open(nil, raw[boxNonceSize:len(raw)-boxPublicKeySize], &nonce, &ephemeral, privateKey)
	if !ok {
		return nil, errors.Wrap(ErrDecryptResponse, "authentication failed")
	}

	return plaintext, nil
}

// SealBox produces the envelope OpenBox expects, using a fresh ephemeral key pair.
func SealBox(recipient *[32]byte, plaintext []byte, random io.Reader) (string, error) {
	ephemeralPub, ephemeralPriv, err := box.GenerateKey(random)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate ephemeral key")
	}
	defer clear(ephemeralPriv[:])

	var nonce [boxNonceSize]byte
	if _, err := io.ReadFull(random, nonce[:]); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := box.Seal(nonce[:], plaintext, &nonce, recipient, ephemeralPriv)
	sealed = append(sealed, ephemeralPub[:]...)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

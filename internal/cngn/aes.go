package cngn

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
)

// EncryptedPayload is the request body sent for every call carrying data.
type EncryptedPayload struct {
	IV      string `json:"iv"`
	Content string `json:"content"`
}

var errInvalidPadding = errors.New("invalid PKCS#7 padding")

// prepareKey hashes the shared secret so any length yields an AES-256 key.
func prepareKey(key string) []byte {
	sum := sha256.Sum256([]byte(key))
	return sum[:]
}

// EncryptAES encrypts plaintext with AES-256-CBC and PKCS#7 padding under sha256(key).
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func EncryptAES(plaintext []byte, key string, random io.Reader) (*EncryptedPayload, error) {
	block, err := aes.NewCipher(prepareKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return &EncryptedPayload{
		IV:      base64.StdEncoding.EncodeToString(iv),
		Content: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// DecryptAES reverses EncryptAES.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func DecryptAES(payload *EncryptedPayload, key string) ([]byte, error) {
	iv, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode IV")
	}
	if len(iv) != aes.BlockSize {
		return nil, errors.Errorf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(payload.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode content")
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.New("ciphertext is not a multiple of the block size")
	}

	block, err := aes.NewCipher(prepareKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errInvalidPadding
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, errInvalidPadding
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errInvalidPadding
		}
	}

	return data[:len(data)-padding], nil
}

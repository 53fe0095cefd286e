package wallet

import (
	"encoding/hex"
	"encoding/json"

	"github/chapool/cngn-go/internal/wallet/network"
)

// KeyPair is the raw key material derived for one network.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
	Network    network.Network
}

// Clear zeroes the private key.
func (k *KeyPair) Clear() {
	if k == nil {
		return
	}
	clear(k.PrivateKey)
}

// Record is a freshly generated (or re-derived) wallet.
// The private key is the 32 byte scalar (secp256k1) or seed (ed25519) of the derived account.
type Record struct {
	Mnemonic   string
	PrivateKey []byte
	Address    string
	Network    network.Network
}

// PrivateKeyHex returns the private key as lowercase hex without a 0x prefix.
func (r *Record) PrivateKeyHex() string {
	return hex.EncodeToString(r.PrivateKey)
}

// Clear zeroes the private key and drops the mnemonic reference.
// Go strings are immutable, so the mnemonic itself cannot be wiped.
func (r *Record) Clear() {
	if r == nil {
		return
	}
	clear(r.PrivateKey)
	r.PrivateKey = nil
	r.Mnemonic = ""
}

type recordJSON struct {
	Mnemonic   string          `json:"mnemonic"`
	PrivateKey string          `json:"privateKey"`
	Address    string          `json:"address"`
	Network    network.Network `json:"network"`
}

func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Mnemonic:   r.Mnemonic,
		PrivateKey: r.PrivateKeyHex(),
		Address:    r.Address,
		Network:    r.Network,
	})
}

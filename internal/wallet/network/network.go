package network

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// ErrUnsupportedNetwork is returned for any network without an entry in the derivation table.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// Network identifies a supported chain.
type Network string

const (
	ETH   Network = "eth"
	BSC   Network = "bsc"
	ATC   Network = "atc"
	XBN   Network = "xbn"
	MATIC Network = "matic"
	BASE  Network = "base"
	TRX   Network = "trx"
	SOL   Network = "sol"
)

// Curve is the elliptic curve family a network derives keys on.
type Curve string

const (
	CurveSecp256k1 Curve = "secp256k1"
	CurveEd25519   Curve = "ed25519"
)

// Encoding is the address rendering scheme of a network.
type Encoding string

const (
	// EncodingHexHash renders the low 20 bytes of the public key hash as 0x-prefixed lowercase hex.
	EncodingHexHash Encoding = "hex-hash"
	// EncodingBase58Check renders the same 20 byte payload through Tron's Base58Check transform.
	EncodingBase58Check Encoding = "base58check"
	// EncodingEd25519Base58 renders the raw 32 byte ed25519 public key as base58.
	EncodingEd25519Base58 Encoding = "ed25519-base58"
)

// HashFunc hashes the raw 64 byte secp256k1 public key into the address digest.
type HashFunc func(data ...[]byte) []byte

// Params describes how keys and addresses are derived for a network.
type Params struct {
	Network  Network
	Name     string
	Curve    Curve
	Path     string
	Encoding Encoding
	// Hash is nil for ed25519 networks, whose address is the public key itself.
	Hash HashFunc
}

const (
	evmPath    = "m/44'/60'/0'/0/0"
	tronPath   = "m/44'/195'/0'/0/0"
	solanaPath = "m/44'/501'/0'/0'"
)

// table is read-only after package init.
var table = map[Network]Params{
	ETH:   {Network: ETH, Name: "Ethereum", Curve: CurveSecp256k1, Path: evmPath, Encoding: EncodingHexHash, Hash: crypto.Keccak256},
	BSC:   {Network: BSC, Name: "BNB Smart Chain", Curve: CurveSecp256k1, Path: evmPath, Encoding: EncodingHexHash, Hash: crypto.Keccak256},
	ATC:   {Network: ATC, Name: "Asset Chain", Curve: CurveSecp256k1, Path: evmPath, Encoding: EncodingHexHash, Hash: crypto.Keccak256},
	XBN:   {Network: XBN, Name: "Bantu", Curve: CurveSecp256k1, Path: evmPath, Encoding: EncodingHexHash, Hash: crypto.Keccak256},
	MATIC: {Network: MATIC, Name: "Polygon", Curve: CurveSecp256k1, Path: evmPath, Encoding: EncodingHexHash, Hash: crypto.Keccak256},
	BASE:  {Network: BASE, Name: "Base", Curve: CurveSecp256k1, Path: evmPath, Encoding: EncodingHexHash, Hash: crypto.Keccak256},
	TRX:   {Network: TRX, Name: "Tron", Curve: CurveSecp256k1, Path: tronPath, Encoding: EncodingBase58Check, Hash: crypto.Keccak256},
	SOL:   {Network: SOL, Name: "Solana", Curve: CurveEd25519, Path: solanaPath, Encoding: EncodingEd25519Base58},
}

// Lookup returns the derivation parameters of n.
func Lookup(n Network) (Params, error) {
	params, ok := table[n]
	if !ok {
		return Params{}, errors.Wrapf(ErrUnsupportedNetwork, "%q", string(n))
	}

	return params, nil
}

// DerivationPath returns the hierarchical derivation path configured for n.
func DerivationPath(n Network) (string, error) {
	params, err := Lookup(n)
	if err != nil {
		return "", err
	}

	return params.Path, nil
}

// Parse converts a user supplied identifier (case-insensitive) into a Network.
func Parse(s string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := table[n]; !ok {
		return "", errors.Wrapf(ErrUnsupportedNetwork, "%q", s)
	}

	return n, nil
}

// All returns every supported network, sorted by identifier.
func All() []Network {
	networks := make([]Network, 0, len(table))
	for n := range table {
		networks = append(networks, n)
	}

	sort.Slice(networks, func(i, j int) bool { return networks[i] < networks[j] })

	return networks
}

// IsSupported reports whether n has an entry in the derivation table.
func (n Network) IsSupported() bool {
	_, ok := table[n]
	return ok
}

func (n Network) String() string {
	return string(n)
}

package derive

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// Path is a parsed hierarchical derivation path; hardened indices carry bip32.FirstHardenedChild.
type Path []uint32

// ParsePath parses a BIP-44 style path string into indices.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func ParsePath(path string) (Path, error) {
	if path != "m" && !strings.HasPrefix(path, "m/") {
		return nil, errors.Wrapf(ErrInvalidPath, "%q must start with m/", path)
	}

	if path == "m" {
		return Path{}, nil
	}

	parts := strings.Split(path[len("m/"):], "/")
	indices := make(Path, 0, len(parts))
	for _, part := range parts {
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H") {
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || index >= uint64(bip32.FirstHardenedChild) {
			return nil, errors.Wrapf(ErrInvalidPath, "invalid path segment %q", part)
		}

		if hardened {
			index += uint64(bip32.FirstHardenedChild)
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}

// IsHardenedOnly reports whether every segment of p is hardened.
func (p Path) IsHardenedOnly() bool {
	for _, index := range p {
		if index < bip32.FirstHardenedChild {
			return false
		}
	}

	return true
}

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")

	for _, index := range p {
		b.WriteString("/")
		if index >= bip32.FirstHardenedChild {
			b.WriteString(strconv.FormatUint(uint64(index-bip32.FirstHardenedChild), 10))
			b.WriteString("'")
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(index), 10))
	}

	return b.String()
}

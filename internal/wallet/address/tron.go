package address

import (
	tronaddress "github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/pkg/errors"
)

// encodeTron prefixes payload with the Tron mainnet byte (0x41) and renders it as Base58Check.
func encodeTron(payload []byte) string {
	tronAddress := make(tronaddress.Address, 0, tronaddress.AddressLength)
	tronAddress = append(tronAddress, tronaddress.TronBytePrefix)
	tronAddress = append(tronAddress, payload...)

	return tronAddress.String()
}

// validateTron decodes the Base58Check address and checks checksum, length and prefix.
func validateTron(s string) error {
	decoded, err := tronaddress.Base58ToAddress(s)
	if err != nil {
		return errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}

	if len(decoded) != tronaddress.AddressLength || decoded[0] != tronaddress.TronBytePrefix {
		return errors.Wrapf(ErrInvalidAddress, "%q is not a Tron mainnet address", s)
	}

	if decoded.String() != s {
		return errors.Wrapf(ErrInvalidAddress, "%q is not canonically encoded", s)
	}

	return nil
}

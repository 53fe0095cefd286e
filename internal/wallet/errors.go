package wallet

import (
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/wallet/derive"
	"github/chapool/cngn-go/internal/wallet/network"
	"github/chapool/cngn-go/internal/wallet/seed"
)

var (
	ErrUnsupportedNetwork       = network.ErrUnsupportedNetwork
	ErrMalformedKeyMaterial     = derive.ErrMalformedKeyMaterial
	ErrNonHardenedSegment       = derive.ErrNonHardenedSegment
	ErrEntropySourceUnavailable = seed.ErrEntropySourceUnavailable
	ErrInvalidMnemonic          = seed.ErrInvalidMnemonic

	// ErrAddressValidation is returned when a derived address fails its network validator.
	// GenerateWalletAddress never returns it; it regenerates instead.
	ErrAddressValidation = errors.New("address failed network validation")

	// ErrValidationRetriesExhausted is returned once the attempt bound is reached without a valid address.
	ErrValidationRetriesExhausted = errors.New("address validation retries exhausted")
)

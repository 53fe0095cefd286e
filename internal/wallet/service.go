package wallet

import (
	"bytes"
	"context"
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/util"
	"github/chapool/cngn-go/internal/wallet/address"
	"github/chapool/cngn-go/internal/wallet/derive"
	"github/chapool/cngn-go/internal/wallet/network"
	"github/chapool/cngn-go/internal/wallet/seed"
)

// DefaultMaxAttempts bounds the regeneration loop when the config leaves it unset.
const DefaultMaxAttempts = 32

// Service generates wallets for the supported networks
type Service interface {
	// GenerateWalletAddress creates a fresh mnemonic and derives a validated wallet for n.
	// Mnemonics whose address fails validation are discarded and replaced.
	GenerateWalletAddress(ctx context.Context, n network.Network) (*Record, error)

	// WalletFromMnemonic deterministically derives the wallet of an existing mnemonic.
	WalletFromMnemonic(ctx context.Context, mnemonic string, passphrase string, n network.Network) (*Record, error)

	// DeriveKeyPair returns the private and public key of mnemonic on n.
	DeriveKeyPair(ctx context.Context, mnemonic string, passphrase string, n network.Network) (*KeyPair, error)

	// Networks lists the supported networks.
	Networks() []network.Network
}

// ValidatorLookup resolves the address validator of a network.
type ValidatorLookup func(n network.Network) (address.Validator, bool)

// Option customizes a Service.
type Option func(s *service)

// WithEntropySource replaces crypto/rand as the source of mnemonic entropy.
func WithEntropySource(r io.Reader) Option {
	return func(s *service) {
		s.entropy = r
	}
}

// WithValidatorLookup replaces the address package's validator registry.
func WithValidatorLookup(lookup ValidatorLookup) Option {
	return func(s *service) {
		s.validatorFor = lookup
	}
}

// WithMetrics enables the prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(s *service) {
		s.metrics = m
	}
}

type service struct {
	maxAttempts  int
	entropy      io.Reader
	validatorFor ValidatorLookup
	metrics      *Metrics
}

// NewService creates a new wallet Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(cfg config.Wallet, opts ...Option) Service {
	s := &service{
		maxAttempts:  cfg.MaxGenerationAttempts,
		entropy:      rand.Reader,
		validatorFor: address.ValidatorFor,
	}

	if s.maxAttempts <= 0 {
		s.maxAttempts = DefaultMaxAttempts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) GenerateWalletAddress(ctx context.Context, n network.Network) (*Record, error) {
	if _, err := network.Lookup(n); err != nil {
		return nil, err
	}

	log := util.LogFromContext(ctx).With().Str("network", n.String()).Logger()
	validate, hasValidator := s.validatorFor(n)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "wallet generation abandoned after %d attempts", attempt-1)
		}

		mnemonic, err := seed.GenerateMnemonicFrom(s.entropy)
		if err != nil {
			return nil, err
		}

		record, err := s.deriveRecord(mnemonic, "", n)
		if err != nil {
			return nil, err
		}

		if hasValidator {
			if err := validate(record.Address); err != nil {
				record.Clear()
				s.metrics.observeRegeneration(n)
				log.Debug().Err(err).Int("attempt", attempt).Msg("Discarding mnemonic with invalid address")
				continue
			}
		}

		s.metrics.observeGenerated(n)
		log.Debug().Int("attempt", attempt).Str("address", record.Address).Msg("Generated wallet")

		return record, nil
	}

	log.Error().Int("max_attempts", s.maxAttempts).Msg("Address validation retries exhausted")

	return nil, errors.Wrapf(ErrValidationRetriesExhausted, "network %s after %d attempts", n, s.maxAttempts)
}

func (s *service) WalletFromMnemonic(ctx context.Context, mnemonic string, passphrase string, n network.Network) (*Record, error) {
	if _, err := network.Lookup(n); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record, err := s.deriveRecord(mnemonic, passphrase, n)
	if err != nil {
		return nil, err
	}

	if validate, ok := s.validatorFor(n); ok {
		if err := validate(record.Address); err != nil {
			record.Clear()
			util.LogFromContext(ctx).Warn().Err(err).Str("network", n.String()).Msg("Derived address failed validation")
			return nil, errors.Wrapf(ErrAddressValidation, "%v", err)
		}
	}

	return record, nil
}

func (s *service) DeriveKeyPair(ctx context.Context, mnemonic string, passphrase string, n network.Network) (*KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	privateKey, err := derivePrivateKey(mnemonic, passphrase, n)
	if err != nil {
		return nil, err
	}

	publicKey, err := address.PublicKey(privateKey, n)
	if err != nil {
		clear(privateKey)
		return nil, err
	}

	return &KeyPair{PrivateKey: privateKey, PublicKey: publicKey, Network: n}, nil
}

func (s *service) Networks() []network.Network {
	return network.All()
}

// deriveRecord runs one derivation cycle. Intermediate key material is zeroed before returning.
func (s *service) deriveRecord(mnemonic string, passphrase string, n network.Network) (*Record, error) {
	privateKey, err := derivePrivateKey(mnemonic, passphrase, n)
	if err != nil {
		return nil, err
	}
	defer clear(privateKey)

	_, addr, err := address.FromPrivateKey(privateKey, n)
	if err != nil {
		return nil, err
	}

	return &Record{
		Mnemonic:   mnemonic,
		PrivateKey: bytes.Clone(privateKey),
		Address:    addr,
		Network:    n,
	}, nil
}

func derivePrivateKey(mnemonic string, passphrase string, n network.Network) ([]byte, error) {
	params, err := network.Lookup(n)
	if err != nil {
		return nil, err
	}

	sd, err := seed.FromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer sd.Clear()

	privateKey, err := derive.PrivateKey(sd, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive %s key", n)
	}

	return privateKey, nil
}

package wallet_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/wallet"
	"github/chapool/cngn-go/internal/wallet/address"
	"github/chapool/cngn-go/internal/wallet/network"
)

const (
	testMnemonic      = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testETHAddress    = "0x9858effd232b4033e47d90003d41ec34ecaeda94"
	testETHPrivateKey = "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"
	testTRXAddress    = "TUEZSdKsoDHQMeZwihtdoBiN46zxhGWYdH"
	testSOLAddress    = "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk"
)

func alwaysInvalid(calls *int) wallet.ValidatorLookup {
	return func(network.Network) (address.Validator, bool) {
		return func(string) error {
			*calls++
			return address.ErrInvalidAddress
		}, true
	}
}

func TestWalletFromMnemonicGoldenVector(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	record, err := s.WalletFromMnemonic(context.Background(), testMnemonic, "", network.ETH)
	require.NoError(t, err)

	assert.Equal(t, testETHAddress, record.Address)
	assert.Equal(t, testETHPrivateKey, record.PrivateKeyHex())
	assert.Equal(t, testMnemonic, record.Mnemonic)
	assert.Equal(t, network.ETH, record.Network)
}

func TestWalletFromMnemonicWalletAppVectors(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	for n, want := range map[network.Network]string{
		network.ETH:   testETHAddress,
		network.BSC:   testETHAddress,
		network.MATIC: testETHAddress,
		network.TRX:   testTRXAddress,
		network.SOL:   testSOLAddress,
	} {
		t.Run(n.String(), func(t *testing.T) {
			record, err := s.WalletFromMnemonic(context.Background(), testMnemonic, "", n)
			require.NoError(t, err)
			assert.Equal(t, want, record.Address)
		})
	}
}

func TestWalletFromMnemonicIsDeterministic(t *testing.T) {
	s := wallet.NewService(config.Wallet{})
	ctx := context.Background()

	for _, n := range s.Networks() {
		t.Run(n.String(), func(t *testing.T) {
			first, err := s.WalletFromMnemonic(ctx, testMnemonic, "", n)
			require.NoError(t, err)
			second, err := s.WalletFromMnemonic(ctx, testMnemonic, "", n)
			require.NoError(t, err)

			assert.Equal(t, first.Address, second.Address)
			assert.Equal(t, first.PrivateKey, second.PrivateKey)

			firstPair, err := s.DeriveKeyPair(ctx, testMnemonic, "", n)
			require.NoError(t, err)
			secondPair, err := s.DeriveKeyPair(ctx, testMnemonic, "", n)
			require.NoError(t, err)

			assert.Equal(t, firstPair.PublicKey, secondPair.PublicKey)
			assert.Equal(t, first.PrivateKey, firstPair.PrivateKey)
		})
	}
}

func TestCrossNetworkIndependence(t *testing.T) {
	s := wallet.NewService(config.Wallet{})
	ctx := context.Background()

	eth, err := s.WalletFromMnemonic(ctx, testMnemonic, "", network.ETH)
	require.NoError(t, err)
	trx, err := s.WalletFromMnemonic(ctx, testMnemonic, "", network.TRX)
	require.NoError(t, err)
	sol, err := s.WalletFromMnemonic(ctx, testMnemonic, "", network.SOL)
	require.NoError(t, err)

	assert.NotEqual(t, eth.PrivateKey, trx.PrivateKey)
	assert.NotEqual(t, eth.PrivateKey, sol.PrivateKey)
	assert.NotEqual(t, trx.PrivateKey, sol.PrivateKey)

	require.NoError(t, address.Validate(eth.Address, network.ETH))
	require.NoError(t, address.Validate(trx.Address, network.TRX))
	require.NoError(t, address.Validate(sol.Address, network.SOL))

	assert.Equal(t, "0x", eth.Address[:2])
	assert.Equal(t, "T", trx.Address[:1])
}

func TestPassphraseChangesWallet(t *testing.T) {
	s := wallet.NewService(config.Wallet{})
	ctx := context.Background()

	plain, err := s.WalletFromMnemonic(ctx, testMnemonic, "", network.ETH)
	require.NoError(t, err)
	protected, err := s.WalletFromMnemonic(ctx, testMnemonic, "TREZOR", network.ETH)
	require.NoError(t, err)

	assert.NotEqual(t, plain.Address, protected.Address)
}

func TestDeriveKeyPair(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	pair, err := s.DeriveKeyPair(context.Background(), testMnemonic, "", network.ETH)
	require.NoError(t, err)
	assert.Equal(t, testETHPrivateKey, hex.EncodeToString(pair.PrivateKey))
	require.Len(t, pair.PublicKey, 65)

	encoded, err := address.Encode(pair.PublicKey, network.ETH)
	require.NoError(t, err)
	assert.Equal(t, testETHAddress, encoded)

	pair.Clear()
	assert.Equal(t, make([]byte, 32), pair.PrivateKey)

	sol, err := s.DeriveKeyPair(context.Background(), testMnemonic, "", network.SOL)
	require.NoError(t, err)
	assert.Len(t, sol.PublicKey, 32)
}

func TestGenerateWalletAddressValidForEveryNetwork(t *testing.T) {
	s := wallet.NewService(config.Wallet{})
	ctx := context.Background()

	for _, n := range s.Networks() {
		t.Run(n.String(), func(t *testing.T) {
			record, err := s.GenerateWalletAddress(ctx, n)
			require.NoError(t, err)

			assert.Equal(t, n, record.Network)
			assert.Len(t, record.PrivateKey, 32)
			require.NoError(t, address.Validate(record.Address, n))

			again, err := s.WalletFromMnemonic(ctx, record.Mnemonic, "", n)
			require.NoError(t, err)
			assert.Equal(t, record.Address, again.Address)
			assert.Equal(t, record.PrivateKey, again.PrivateKey)
		})
	}
}

func TestGenerateWalletAddressConcurrent(t *testing.T) {
	s := wallet.NewService(config.Wallet{})
	ctx := context.Background()

	const workers = 16
	networks := []network.Network{network.ETH, network.TRX, network.SOL, network.BASE}

	records := make([]*wallet.Record, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records[i], errs[i] = s.GenerateWalletAddress(ctx, networks[i%len(networks)])
		}()
	}
	wg.Wait()

	mnemonics := make(map[string]struct{}, workers)
	for i, record := range records {
		require.NoError(t, errs[i])

		n := networks[i%len(networks)]
		assert.Equal(t, n, record.Network)
		require.NoError(t, address.Validate(record.Address, n))

		again, err := s.WalletFromMnemonic(ctx, record.Mnemonic, "", n)
		require.NoError(t, err)
		assert.Equal(t, record.Address, again.Address)
		assert.Equal(t, record.PrivateKey, again.PrivateKey)

		mnemonics[record.Mnemonic] = struct{}{}
	}

	assert.Len(t, mnemonics, workers)
}

func TestGenerateWalletAddressTronAlwaysValid(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	for range 20 {
		record, err := s.GenerateWalletAddress(context.Background(), network.TRX)
		require.NoError(t, err)
		require.NoError(t, address.Validate(record.Address, network.TRX))
	}
}

func TestGenerateWalletAddressUnsupportedNetwork(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	_, err := s.GenerateWalletAddress(context.Background(), network.Network("btc"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wallet.ErrUnsupportedNetwork))

	_, err = s.WalletFromMnemonic(context.Background(), testMnemonic, "", network.Network("btc"))
	assert.True(t, errors.Is(err, wallet.ErrUnsupportedNetwork))
}

func TestGenerateWalletAddressRetryBound(t *testing.T) {
	calls := 0
	s := wallet.NewService(config.Wallet{}, wallet.WithValidatorLookup(alwaysInvalid(&calls)))

	record, err := s.GenerateWalletAddress(context.Background(), network.ETH)
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, wallet.ErrValidationRetriesExhausted))
	assert.Equal(t, wallet.DefaultMaxAttempts, calls)
}

func TestGenerateWalletAddressConfiguredRetryBound(t *testing.T) {
	calls := 0
	reg := prometheus.NewRegistry()
	metrics, err := wallet.NewMetrics(reg)
	require.NoError(t, err)

	s := wallet.NewService(
		config.Wallet{MaxGenerationAttempts: 5},
		wallet.WithValidatorLookup(alwaysInvalid(&calls)),
		wallet.WithMetrics(metrics),
	)

	_, err = s.GenerateWalletAddress(context.Background(), network.TRX)
	assert.True(t, errors.Is(err, wallet.ErrValidationRetriesExhausted))
	assert.Equal(t, 5, calls)
	count, err := testutil.GatherAndCount(reg, "cngn_wallet_regenerations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGenerateWalletAddressRegeneratesWithFreshMnemonic(t *testing.T) {
	// The first 16 bytes yield the all-"abandon" mnemonic, the next 16 the all-"zoo" one.
	entropy := append(bytes.Repeat([]byte{0x00}, 16), bytes.Repeat([]byte{0xff}, 16)...)

	var seen []string
	lookup := func(network.Network) (address.Validator, bool) {
		return func(addr string) error {
			seen = append(seen, addr)
			if len(seen) == 1 {
				return address.ErrInvalidAddress
			}
			return nil
		}, true
	}

	reg := prometheus.NewRegistry()
	metrics, err := wallet.NewMetrics(reg)
	require.NoError(t, err)

	s := wallet.NewService(config.Wallet{},
		wallet.WithEntropySource(bytes.NewReader(entropy)),
		wallet.WithValidatorLookup(lookup),
		wallet.WithMetrics(metrics),
	)

	record, err := s.GenerateWalletAddress(context.Background(), network.ETH)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, testETHAddress, seen[0])
	assert.NotEqual(t, testMnemonic, record.Mnemonic)
	assert.Equal(t, "zoo", record.Mnemonic[:3])
	assert.Equal(t, seen[1], record.Address)

	expected := `
		# HELP cngn_wallet_generated_total Number of wallets handed out, by network.
		# TYPE cngn_wallet_generated_total counter
		cngn_wallet_generated_total{network="eth"} 1
		# HELP cngn_wallet_regenerations_total Number of mnemonics discarded because the derived address failed validation, by network.
		# TYPE cngn_wallet_regenerations_total counter
		cngn_wallet_regenerations_total{network="eth"} 1
	`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected)))
}

func TestGenerateWalletAddressEntropyFailure(t *testing.T) {
	s := wallet.NewService(config.Wallet{},
		wallet.WithEntropySource(iotest.ErrReader(errors.New("device unavailable"))))

	_, err := s.GenerateWalletAddress(context.Background(), network.ETH)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wallet.ErrEntropySourceUnavailable))
}

func TestGenerateWalletAddressCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := wallet.NewService(config.Wallet{})

	_, err := s.GenerateWalletAddress(ctx, network.ETH)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWalletFromMnemonicSurfacesValidationFailure(t *testing.T) {
	calls := 0
	s := wallet.NewService(config.Wallet{}, wallet.WithValidatorLookup(alwaysInvalid(&calls)))

	record, err := s.WalletFromMnemonic(context.Background(), testMnemonic, "", network.ETH)
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, wallet.ErrAddressValidation))
	assert.Equal(t, 1, calls)
}

func TestWalletFromMnemonicInvalidMnemonic(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	_, err := s.WalletFromMnemonic(context.Background(), "abandon abandon abandon", "", network.ETH)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wallet.ErrInvalidMnemonic))
}

func TestRecordJSONAndClear(t *testing.T) {
	s := wallet.NewService(config.Wallet{})

	record, err := s.WalletFromMnemonic(context.Background(), testMnemonic, "", network.ETH)
	require.NoError(t, err)

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"mnemonic": "`+testMnemonic+`",
		"privateKey": "`+testETHPrivateKey+`",
		"address": "`+testETHAddress+`",
		"network": "eth"
	}`, string(raw))

	key := record.PrivateKey
	record.Clear()
	assert.Equal(t, make([]byte, 32), key)
	assert.Empty(t, record.Mnemonic)
	assert.Nil(t, record.PrivateKey)
}

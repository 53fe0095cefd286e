package wallet_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cngn-go/cmd/wallet"
	"github/chapool/cngn-go/internal/wallet/address"
	"github/chapool/cngn-go/internal/wallet/network"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := wallet.New()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func deriveJSON(t *testing.T, n string) map[string]string {
	t.Helper()

	out, err := execute(t, "derive", "--network", n, "--mnemonic", testMnemonic, "--json")
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &record))

	return record
}

func TestDeriveJSON(t *testing.T) {
	record := deriveJSON(t, "eth")

	assert.Equal(t, testMnemonic, record["mnemonic"])
	assert.Equal(t, "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", record["privateKey"])
	assert.Equal(t, "0x9858effd232b4033e47d90003d41ec34ecaeda94", record["address"])
	assert.Equal(t, "eth", record["network"])
}

func TestDerivePublicKey(t *testing.T) {
	for _, tt := range []struct {
		network network.Network
		size    int
	}{
		{network.ETH, 65},
		{network.TRX, 65},
		{network.SOL, 32},
	} {
		t.Run(tt.network.String(), func(t *testing.T) {
			record := deriveJSON(t, tt.network.String())

			publicKey, err := hex.DecodeString(record["publicKey"])
			require.NoError(t, err)
			require.Len(t, publicKey, tt.size)

			addr, err := address.Encode(publicKey, tt.network)
			require.NoError(t, err)
			assert.Equal(t, record["address"], addr)
		})
	}
}

func TestDeriveTextPrintsPublicKey(t *testing.T) {
	out, err := execute(t, "derive", "-n", "sol", "-m", testMnemonic)
	require.NoError(t, err)

	assert.Contains(t, out, "Address:     HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk")
	assert.Contains(t, out, "Public key:  ")
}

func TestDeriveRequiresMnemonic(t *testing.T) {
	_, err := execute(t, "derive", "--network", "eth")
	assert.Error(t, err)
}

func TestGenerateText(t *testing.T) {
	out, err := execute(t, "generate", "--network", "trx")
	require.NoError(t, err)

	assert.Contains(t, out, "Network:     trx")

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if addr, ok := strings.CutPrefix(line, "Address:     "); ok {
			assert.NoError(t, address.Validate(addr, network.TRX))
			return
		}
	}

	t.Fatalf("no address line in output: %s", out)
}

func TestGenerateIgnoresCNGNSettings(t *testing.T) {
	t.Setenv("CNGN_PRIVATE_KEY", "not an openssh key")

	out, err := execute(t, "generate", "--network", "eth", "--json")
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.NoError(t, address.Validate(record["address"], network.ETH))
	assert.NotContains(t, record, "publicKey")
}

func TestGenerateJSON(t *testing.T) {
	out, err := execute(t, "generate", "-n", "sol", "--json")
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &record))

	assert.Equal(t, "sol", record["network"])
	assert.Len(t, strings.Fields(record["mnemonic"]), 12)
	assert.NotEmpty(t, record["address"])
}

func TestGenerateUnsupportedNetwork(t *testing.T) {
	_, err := execute(t, "generate", "--network", "btc")
	assert.True(t, errors.Is(err, network.ErrUnsupportedNetwork))
}

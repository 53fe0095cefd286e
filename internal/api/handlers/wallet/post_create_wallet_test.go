package wallet_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/test"
	"github/chapool/cngn-go/internal/types"
	"github/chapool/cngn-go/internal/wallet"
	"github/chapool/cngn-go/internal/wallet/address"
	"github/chapool/cngn-go/internal/wallet/network"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestPostCreateWalletGenerates(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, n := range []string{"eth", "trx", "sol", "BSC"} {
			payload := test.GenericPayload{"network": n}

			res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", payload, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

			var response types.PostCreateWalletResponse
			test.ParseResponseAndValidate(t, res, &response)

			require.True(t, response.Success)
			require.NotNil(t, response.Data)

			id := network.Network(strings.ToLower(n))
			assert.Equal(t, id.String(), swag.StringValue(response.Data.Network))
			assert.Len(t, strings.Fields(swag.StringValue(response.Data.Mnemonic)), 12)
			assert.Len(t, swag.StringValue(response.Data.PrivateKey), 64)
			require.NoError(t, address.Validate(swag.StringValue(response.Data.Address), id))
		}
	})
}

func TestPostCreateWalletFromMnemonic(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"network":  "eth",
			"mnemonic": testMnemonic,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostCreateWalletResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "0x9858effd232b4033e47d90003d41ec34ecaeda94", swag.StringValue(response.Data.Address))
		assert.Equal(t, "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", swag.StringValue(response.Data.PrivateKey))
		assert.Equal(t, testMnemonic, swag.StringValue(response.Data.Mnemonic))
	})
}

func TestPostCreateWalletStampsCreatedAt(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		now := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
		s.Clock = time2.NewMockClock(now)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", test.GenericPayload{"network": "sol"}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostCreateWalletResponse
		test.ParseResponseAndValidate(t, res, &response)

		require.NotNil(t, response.Data.CreatedAt)
		assert.True(t, now.Equal(time.Time(*response.Data.CreatedAt)))
	})
}

func TestPostCreateWalletPassphrase(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"network":    "eth",
			"mnemonic":   testMnemonic,
			"passphrase": "TREZOR",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PostCreateWalletResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.NotEqual(t, "0x9858effd232b4033e47d90003d41ec34ecaeda94", swag.StringValue(response.Data.Address))
	})
}

func TestPostCreateWalletUnsupportedNetwork(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, payload := range []test.GenericPayload{
			{"network": "btc"},
			{},
		} {
			res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", payload, nil)
			require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

			var response types.HTTPValidationError
			test.ParseResponseAndValidate(t, res, &response)

			assert.Equal(t, types.PublicHTTPErrorTypeUnsupportedNetwork, *response.Type)
			require.Len(t, response.ValidationErrors, 1)
			assert.Equal(t, "network", swag.StringValue(response.ValidationErrors[0].Key))
		}
	})
}

func TestPostCreateWalletInvalidMnemonic(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"network":  "trx",
			"mnemonic": "abandon abandon abandon",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.PublicHTTPErrorTypeInvalidMnemonic, *response.Type)
	})
}

func TestPostCreateWalletMalformedBody(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithRawBody(t, s, "POST", "/api/v1/wallets", strings.NewReader(`{"network":`), nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.PublicHTTPErrorTypeMalformedBody, *response.Type)
	})
}

func TestPostCreateWalletRetriesExhausted(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		s.Wallet = wallet.NewService(s.Config.Wallet,
			wallet.WithValidatorLookup(func(network.Network) (address.Validator, bool) {
				return func(string) error { return address.ErrInvalidAddress }, true
			}),
		)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", test.GenericPayload{"network": "eth"}, nil)
		require.Equal(t, http.StatusServiceUnavailable, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.PublicHTTPErrorTypeGenerationExhausted, *response.Type)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallets", test.GenericPayload{"network": "eth", "mnemonic": testMnemonic}, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.Result().StatusCode)
	})
}

func TestPostCreateWalletCountsMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallets", test.GenericPayload{"network": "trx"}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), `cngn_wallet_generated_total{network="trx"} 1`)
		assert.Contains(t, res.Body.String(), `cngn_http_requests_total`)
	})
}

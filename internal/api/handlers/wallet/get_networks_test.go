package wallet_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/test"
	"github/chapool/cngn-go/internal/types"
)

func TestGetNetworks(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/networks", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetNetworksResponse
		test.ParseResponseAndValidate(t, res, &response)

		require.True(t, response.Success)
		require.Len(t, response.Data, 8)

		byID := make(map[string]*types.NetworkItem, len(response.Data))
		for _, item := range response.Data {
			byID[swag.StringValue(item.ID)] = item
		}

		require.Contains(t, byID, "eth")
		assert.Equal(t, "m/44'/60'/0'/0/0", swag.StringValue(byID["eth"].DerivationPath))
		assert.True(t, swag.BoolValue(byID["eth"].Validated))

		require.Contains(t, byID, "trx")
		assert.Equal(t, "m/44'/195'/0'/0/0", swag.StringValue(byID["trx"].DerivationPath))
		assert.True(t, swag.BoolValue(byID["trx"].Validated))

		require.Contains(t, byID, "sol")
		assert.Equal(t, "ed25519", swag.StringValue(byID["sol"].Curve))
		assert.False(t, swag.BoolValue(byID["sol"].Validated))
	})
}

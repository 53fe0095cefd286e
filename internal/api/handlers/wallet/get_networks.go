package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/types"
	"github/chapool/cngn-go/internal/wallet/address"
	"github/chapool/cngn-go/internal/wallet/network"
)

func GetNetworksRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/networks", getNetworksHandler(s))
}

func getNetworksHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		networks := s.Wallet.Networks()

		items := make([]*types.NetworkItem, 0, len(networks))
		for _, n := range networks {
			params, err := network.Lookup(n)
			if err != nil {
				return err
			}

			_, validated := address.ValidatorFor(n)

			items = append(items, &types.NetworkItem{
				ID:             swag.String(n.String()),
				Name:           swag.String(params.Name),
				Curve:          swag.String(string(params.Curve)),
				DerivationPath: swag.String(params.Path),
				Encoding:       swag.String(string(params.Encoding)),
				Validated:      swag.Bool(validated),
			})
		}

		return c.JSON(http.StatusOK, &types.GetNetworksResponse{Success: true, Data: items})
	}
}

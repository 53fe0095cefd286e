package wallet

import (
	"net/http"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/api/httperrors"
	"github/chapool/cngn-go/internal/types"
	"github/chapool/cngn-go/internal/util"
	"github/chapool/cngn-go/internal/wallet"
	"github/chapool/cngn-go/internal/wallet/network"
)

func PostCreateWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("", postCreateWalletHandler(s))
}

func postCreateWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateWalletPayload
		if err := c.Bind(&body); err != nil {
			log.Debug().Err(err).Msg("Failed to bind create wallet payload")
			return httperrors.ErrBadRequestMalformedBody
		}

		n, err := network.Parse(swag.StringValue(body.Network))
		if err != nil {
			return unsupportedNetworkError(body.Network)
		}

		var record *wallet.Record
		if mnemonic := strings.TrimSpace(swag.StringValue(body.Mnemonic)); mnemonic != "" {
			record, err = s.Wallet.WalletFromMnemonic(ctx, mnemonic, swag.StringValue(body.Passphrase), n)
		} else {
			record, err = s.Wallet.GenerateWalletAddress(ctx, n)
		}
		if err != nil {
			log.Debug().Err(err).Str("network", n.String()).Msg("Failed to create wallet")
			return mapWalletError(err)
		}
		defer record.Clear()

		return c.JSON(http.StatusOK, &types.PostCreateWalletResponse{
			Success: true,
			Data:    toGeneratedWallet(record, strfmt.DateTime(s.Clock.Now())),
		})
	}
}

func toGeneratedWallet(record *wallet.Record, createdAt strfmt.DateTime) *types.GeneratedWallet {
	return &types.GeneratedWallet{
		Address:    swag.String(record.Address),
		CreatedAt:  &createdAt,
		Mnemonic:   swag.String(record.Mnemonic),
		Network:    swag.String(record.Network.String()),
		PrivateKey: swag.String(record.PrivateKeyHex()),
	}
}

func unsupportedNetworkError(requested *string) error {
	reason := "required"
	if requested != nil {
		reason = "unsupported network"
	}

	return httperrors.NewHTTPValidationError(
		http.StatusBadRequest,
		types.PublicHTTPErrorTypeUnsupportedNetwork,
		"The requested network is not supported",
		[]*types.HTTPValidationErrorDetail{
			{
				Key:   swag.String("network"),
				In:    swag.String("body"),
				Error: swag.String(reason),
			},
		},
	)
}

func mapWalletError(err error) error {
	switch {
	case errors.Is(err, wallet.ErrUnsupportedNetwork):
		return unsupportedNetworkError(swag.String(""))
	case errors.Is(err, wallet.ErrInvalidMnemonic):
		return httperrors.ErrBadRequestInvalidMnemonic
	case errors.Is(err, wallet.ErrAddressValidation):
		return httperrors.ErrUnprocessableAddress
	case errors.Is(err, wallet.ErrValidationRetriesExhausted):
		return httperrors.ErrServiceUnavailableExhausted
	case errors.Is(err, wallet.ErrEntropySourceUnavailable):
		return httperrors.ErrServiceUnavailableNoEntropy
	default:
		return err
	}
}

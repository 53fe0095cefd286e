package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/api/handlers/common"
	"github/chapool/cngn-go/internal/api/handlers/wallet"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = append(s.Router.Routes, []*echo.Route{
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		wallet.GetNetworksRoute(s),
		wallet.PostCreateWalletRoute(s),
	}...)
}

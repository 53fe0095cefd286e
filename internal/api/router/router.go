package router

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/api/handlers"
	"github/chapool/cngn-go/internal/api/httperrors"
	"github/chapool/cngn-go/internal/api/middleware"
)

const metricsNamespace = "cngn"

func Init(s *api.Server) error {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandlerWithConfig(httperrors.HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// ---
	// General middleware
	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
			Generator: uuid.NewString,
		}))
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level:   s.Config.Logger.RequestLevel,
			Skipper: skipManagement(s),
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Management.EnableMetrics {
		s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  metricsNamespace,
			Subsystem:  "http",
			Registerer: s.Registry,
			Skipper:    skipManagement(s),
		}))
	}

	s.Router = &api.Router{
		Routes:      nil, // will be populated by handlers.AttachAllRoutes(s)
		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-"),
		APIV1:       s.Echo.Group("/api/v1"),
		APIV1Wallet: s.Echo.Group("/api/v1/wallets"),
	}

	if s.Config.Management.EnableMetrics {
		s.Router.Routes = append(s.Router.Routes, s.Router.Root.GET(
			s.Config.Management.MetricsPath,
			echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: s.Registry}),
		))
	}

	// ---
	// Finally attach our handlers
	handlers.AttachAllRoutes(s)

	return nil
}

// skipManagement keeps probes and metric scrapes out of request logs and metrics.
func skipManagement(s *api.Server) echoMiddleware.Skipper {
	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		return strings.HasPrefix(path, "/-/") || path == s.Config.Management.MetricsPath
	}
}

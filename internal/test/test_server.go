package test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github/chapool/cngn-go/internal/api"
	"github/chapool/cngn-go/internal/api/router"
	"github/chapool/cngn-go/internal/config"
)

// WithTestServer returns a fully configured server (using the default server config).
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestConfig(), closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config)
	closure(s)
}

// NewTestServer builds a server and registers its shutdown with t.Cleanup.
func NewTestServer(t *testing.T, config config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServer(config)
	require.NoError(t, err, "Failed to init server")

	err = router.Init(s)
	require.NoError(t, err, "Failed to init router")

	t.Cleanup(func() {
		// disallow any further refs to managed object after running the test
		errs := s.Shutdown(context.Background())
		for _, err := range errs {
			t.Errorf("Failed to gracefully shutdown server: %v", err)
		}
	})

	return s
}

// DefaultTestConfig is the env derived config with settings suited for tests.
func DefaultTestConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Logger.Level = zerolog.WarnLevel
	cfg.Logger.RequestLevel = zerolog.DebugLevel
	cfg.Echo.HideInternalServerErrorDetails = false
	cfg.Management.EnableMetrics = true
	cfg.CNGN.PrivateKey = ""

	return cfg
}

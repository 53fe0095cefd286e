package api

import (
	"github.com/dropbox/godropbox/time2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github/chapool/cngn-go/internal/cngn"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/wallet"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewClock returns the wall clock; tests swap in a time2.MockClock.
//
//nolint:ireturn
func NewClock() time2.Clock {
	return time2.DefaultClock
}

// NewPrometheusRegistry returns a per-server registry, so parallel test servers never collide on registration.
func NewPrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func NewWalletMetrics(reg *prometheus.Registry) (*wallet.Metrics, error) {
	return wallet.NewMetrics(reg)
}

//nolint:ireturn // wallet.Service is the injected dependency
func NewWalletService(cfg config.Server, metrics *wallet.Metrics) wallet.Service {
	return wallet.NewService(cfg.Wallet, wallet.WithMetrics(metrics))
}

func NewCNGNClient(cfg config.Server) (*cngn.Client, error) {
	return cngn.NewClient(cfg.CNGN)
}

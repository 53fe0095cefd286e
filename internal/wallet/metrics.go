package wallet

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github/chapool/cngn-go/internal/wallet/network"
)

const metricsNamespace = "cngn"

// Metrics counts generated wallets and rejected attempts per network.
type Metrics struct {
	generated     *prometheus.CounterVec
	regenerations *prometheus.CounterVec
}

// NewMetrics registers the wallet counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "wallet",
			Name:      "generated_total",
			Help:      "Number of wallets handed out, by network.",
		}, []string{"network"}),
		regenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "wallet",
			Name:      "regenerations_total",
			Help:      "Number of mnemonics discarded because the derived address failed validation, by network.",
		}, []string{"network"}),
	}

	for _, c := range []prometheus.Collector{m.generated, m.regenerations} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register wallet metrics")
		}
	}

	return m, nil
}

func (m *Metrics) observeGenerated(n network.Network) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(n.String()).Inc()
}

func (m *Metrics) observeRegeneration(n network.Network) {
	if m == nil {
		return
	}
	m.regenerations.WithLabelValues(n.String()).Inc()
}

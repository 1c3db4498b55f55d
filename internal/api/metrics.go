package api

import "github.com/prometheus/client_golang/prometheus" // Metrics

// Metrics counts balance transactions and rejected logins
type Metrics struct {
	transactions  *prometheus.CounterVec // By type and outcome
	loginFailures *prometheus.CounterVec // By login kind
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "user_ledger",
			Subsystem: "api",
			Name:      "transactions_total",
			Help:      "Count of deposit and withdrawal requests",
		}, []string{"type", "outcome"}),
		loginFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "user_ledger",
			Subsystem: "api",
			Name:      "login_failures_total",
			Help:      "Count of rejected logins",
		}, []string{"kind"}),
	}
	for _, collector := range []prometheus.Collector{m.transactions, m.loginFailures} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordTransaction(typ, outcome string) {
	m.transactions.With(prometheus.Labels{"type": typ, "outcome": outcome}).Inc()
}

func (m *Metrics) recordLoginFailure(kind string) {
	m.loginFailures.With(prometheus.Labels{"kind": kind}).Inc()
}

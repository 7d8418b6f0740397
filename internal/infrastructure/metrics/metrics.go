package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds Prometheus metrics for ledger operations. It satisfies the
// ledger.Metrics interface.
type Metrics struct {
	accountsOpened    *prometheus.CounterVec
	accountsClosed    *prometheus.CounterVec
	openAccounts      *prometheus.GaugeVec
	transactions      *prometheus.CounterVec
	transactionAmount *prometheus.HistogramVec
}

// New creates and registers all ledger metrics. A nil registerer uses the
// default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		accountsOpened: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bankledger_accounts_opened_total",
			Help: "Total number of accounts opened",
		}, []string{"type"}),
		accountsClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bankledger_accounts_closed_total",
			Help: "Total number of accounts closed",
		}, []string{"type"}),
		openAccounts: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bankledger_open_accounts",
			Help: "Number of currently open accounts",
		}, []string{"type"}),
		transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bankledger_transactions_total",
			Help: "Total number of recorded transactions",
		}, []string{"operation"}),
		transactionAmount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bankledger_transaction_amount",
			Help:    "Transaction amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
		}, []string{"operation"}),
	}
}

// AccountOpened records an account opening.
func (m *Metrics) AccountOpened(accountType string) {
	m.accountsOpened.WithLabelValues(accountType).Inc()
	m.openAccounts.WithLabelValues(accountType).Inc()
}

// AccountClosed records an account closure.
func (m *Metrics) AccountClosed(accountType string) {
	m.accountsClosed.WithLabelValues(accountType).Inc()
	m.openAccounts.WithLabelValues(accountType).Dec()
}

// TransactionRecorded records a balance-affecting operation.
func (m *Metrics) TransactionRecorded(operation string, amount decimal.Decimal) {
	m.transactions.WithLabelValues(operation).Inc()
	m.transactionAmount.WithLabelValues(operation).Observe(amount.InexactFloat64())
}

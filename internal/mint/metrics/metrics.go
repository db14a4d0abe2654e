package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	MintsTotal      *prometheus.CounterVec
	TokensIssued    prometheus.Counter
	MintRejections  *prometheus.CounterVec
	TreasuryBalance prometheus.Gauge
	Withdrawals     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		MintsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mintgate_mints_total",
			Help: "Total number of admitted mint calls by mode",
		}, []string{"mode"}),
		TokensIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mintgate_tokens_issued_total",
			Help: "Total number of token identifiers issued",
		}),
		MintRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mintgate_mint_rejections_total",
			Help: "Total number of rejected mint calls by reason",
		}, []string{"reason"}),
		TreasuryBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "mintgate_treasury_balance",
			Help: "Current accumulated treasury balance",
		}),
		Withdrawals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mintgate_treasury_withdrawals_total",
			Help: "Total number of successful treasury withdrawals",
		}),
	}
}

func (m *Metrics) ObserveMint(mode string, quantity uint64) {
	m.MintsTotal.WithLabelValues(mode).Inc()
	m.TokensIssued.Add(float64(quantity))
}

func (m *Metrics) ObserveRejection(reason string) {
	m.MintRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) SetTreasuryBalance(balance uint64) {
	m.TreasuryBalance.Set(float64(balance))
}

func (m *Metrics) ObserveWithdrawal() {
	m.Withdrawals.Inc()
}

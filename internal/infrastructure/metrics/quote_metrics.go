package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/value"
)

const namespace = "rating"

// QuoteMetrics records pipeline outcomes as Prometheus collectors.
type QuoteMetrics struct {
	quotesTotal     *prometheus.CounterVec
	rejectionsTotal *prometheus.CounterVec
	failuresTotal   prometheus.Counter
	annualPremium   *prometheus.HistogramVec
	bulkSize        prometheus.Histogram
}

// NewQuoteMetrics creates the collectors and registers them with reg.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	m := &QuoteMetrics{
		quotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Total number of issued quotes by policy type and risk grade",
			},
			[]string{"policy_type", "risk_grade"},
		),
		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_rejections_total",
				Help:      "Total number of quote requests rejected by underwriting validation",
			},
			[]string{"policy_type"},
		),
		failuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_failures_total",
				Help:      "Total number of quote calculations that failed unexpectedly",
			},
		),
		annualPremium: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "quote_annual_premium",
				Help:      "Annual premium of issued quotes",
				Buckets:   prometheus.ExponentialBuckets(500, 4, 10), //nolint:mnd
			},
			[]string{"policy_type"},
		),
		bulkSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bulk_quote_size",
				Help:      "Number of requests per bulk quote call",
				Buckets:   prometheus.LinearBuckets(10, 10, 10), //nolint:mnd
			},
		),
	}

	reg.MustRegister(
		m.quotesTotal,
		m.rejectionsTotal,
		m.failuresTotal,
		m.annualPremium,
		m.bulkSize,
	)

	return m
}

func (m *QuoteMetrics) QuoteIssued(q entity.Quote) {
	m.quotesTotal.WithLabelValues(q.PolicyType.String(), q.RiskGrade.String()).Inc()
	m.annualPremium.WithLabelValues(q.PolicyType.String()).Observe(q.AnnualPremium)
}

func (m *QuoteMetrics) QuoteRejected(policy value.PolicyType) {
	m.rejectionsTotal.WithLabelValues(policy.String()).Inc()
}

func (m *QuoteMetrics) QuoteFailed() {
	m.failuresTotal.Inc()
}

func (m *QuoteMetrics) BulkEvaluated(size int) {
	m.bulkSize.Observe(float64(size))
}

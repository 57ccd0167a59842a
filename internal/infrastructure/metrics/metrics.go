package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TransferMetrics groups the prometheus collectors for the transfer engine.
type TransferMetrics struct {
	TransfersCompletedTotal prometheus.CounterVec
	TransfersAmountTotal    prometheus.CounterVec
	TransferErrorsTotal     prometheus.CounterVec
	RateFallbackTotal       prometheus.CounterVec
	ConflictRetriesTotal    prometheus.Counter
	TransferDuration        prometheus.HistogramVec
}

func NewTransferMetrics() *TransferMetrics {
	return &TransferMetrics{
		TransfersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_completed_total",
				Help: "Total number of completed transfers",
			},
			[]string{"currency", "to_currency"},
		),

		TransfersAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_amount_total",
				Help: "Total debited amount of completed transfers, in the sender's currency",
			},
			[]string{"currency"},
		),

		TransferErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_errors_total",
				Help: "Total number of failed transfers by error kind",
			},
			[]string{"error_type"},
		),

		RateFallbackTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_fallback_total",
				Help: "Total number of conversions served from the static fallback rate table",
			},
			[]string{"currency", "to_currency"},
		),

		ConflictRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transfer_conflict_retries_total",
				Help: "Total number of balance update conflicts that were retried",
			},
		),

		TransferDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_seconds",
				Help:    "Transfer processing time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"status"},
		),
	}
}

func (m *TransferMetrics) RecordTransferCompleted(currency, toCurrency string, amount float64) {
	m.TransfersCompletedTotal.WithLabelValues(currency, toCurrency).Inc()
	m.TransfersAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *TransferMetrics) RecordTransferError(errorType string) {
	m.TransferErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *TransferMetrics) RecordRateFallback(currency, toCurrency string) {
	m.RateFallbackTotal.WithLabelValues(currency, toCurrency).Inc()
}

func (m *TransferMetrics) RecordConflictRetry() {
	m.ConflictRetriesTotal.Inc()
}

func (m *TransferMetrics) RecordTransferDuration(status string, seconds float64) {
	m.TransferDuration.WithLabelValues(status).Observe(seconds)
}

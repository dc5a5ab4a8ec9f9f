package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ReportStatusSuccess  = "success"
	ReportStatusRejected = "rejected"
	ReportStatusFailed   = "failed"
)

type PrometheusMetrics struct {
	tablesLoaded     *prometheus.CounterVec
	rowsLoaded       prometheus.Histogram
	invalidDates     prometheus.Counter
	missingPrices    prometheus.Counter
	reportsTotal     *prometheus.CounterVec
	reportDuration   prometheus.Histogram
	periodsProcessed prometheus.Counter
}

// NewPrometheusMetrics registers the report metrics with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		tablesLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delivery_tables_loaded_total",
				Help: "Total number of delivery exports loaded by source format",
			},
			[]string{"format"},
		),
		rowsLoaded: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "delivery_table_rows",
				Help:    "Number of data rows per loaded delivery export",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
		invalidDates: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "delivery_rows_invalid_date_total",
				Help: "Total number of rows whose delivery date could not be parsed",
			},
		),
		missingPrices: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "delivery_rows_missing_price_total",
				Help: "Total number of rows whose price could not be coerced to a number",
			},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_reports_total",
				Help: "Total number of dining vs fiscal reports by outcome",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_report_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		periodsProcessed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_report_periods_total",
				Help: "Total number of periods reconciled",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTableLoaded(format string, rows, invalidDates, missingPrices int) {
	m.tablesLoaded.WithLabelValues(format).Inc()
	m.rowsLoaded.Observe(float64(rows))
	m.invalidDates.Add(float64(invalidDates))
	m.missingPrices.Add(float64(missingPrices))
}

func (m *PrometheusMetrics) RecordReport(status string, periods int, duration time.Duration) {
	m.reportsTotal.WithLabelValues(status).Inc()
	m.reportDuration.Observe(float64(duration.Milliseconds()))
	if status == ReportStatusSuccess {
		m.periodsProcessed.Add(float64(periods))
	}
}

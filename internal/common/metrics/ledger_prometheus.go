package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	UpsertSourceAPI      = "api"
	UpsertSourceEditSink = "edit_sink"
	UpsertSourceJob      = "reconcile_job"
)

type LedgerPrometheusMetrics struct {
	projectedRows    prometheus.Histogram
	manualUpserts    *prometheus.CounterVec
	reconciledTotals *prometheus.CounterVec
	windowCache      *prometheus.CounterVec
}

func newLedgerPrometheusMetrics(reg prometheus.Registerer) *LedgerPrometheusMetrics {
	mtc := &LedgerPrometheusMetrics{
		projectedRows: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_ledger_projected_rows",
				Help:    "Number of rows in a projected ledger window",
				Buckets: []float64{0, 1, 7, 15, 31, 62, 93, 186, 366},
			},
		),
		manualUpserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ledger_manual_entry_upserts_total",
				Help: "Number of manual entry writes by source and result",
			},
			[]string{"source", "success"},
		),
		reconciledTotals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ledger_reconciled_rows_total",
				Help: "Number of rows checked and rewritten by the settlement total reconciliation",
			},
			[]string{"result"},
		),
		windowCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ledger_window_cache_total",
				Help: "Daily sales window cache lookups",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(mtc.projectedRows, mtc.manualUpserts, mtc.reconciledTotals, mtc.windowCache)

	return mtc
}

func (m *LedgerPrometheusMetrics) RecordProjection(rows int) {
	if m == nil {
		return
	}
	m.projectedRows.Observe(float64(rows))
}

func (m *LedgerPrometheusMetrics) RecordUpsert(source string, err error) {
	if m == nil {
		return
	}
	m.manualUpserts.WithLabelValues(source, strconv.FormatBool(err == nil)).Inc()
}

func (m *LedgerPrometheusMetrics) RecordReconcile(checked, updated int) {
	if m == nil {
		return
	}
	m.reconciledTotals.WithLabelValues("checked").Add(float64(checked))
	m.reconciledTotals.WithLabelValues("updated").Add(float64(updated))
}

func (m *LedgerPrometheusMetrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.windowCache.WithLabelValues(result).Inc()
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the dashboard's metrics behind one /metrics handler
type Registry struct {
	reg              *prometheus.Registry
	ReportRuns       prometheus.Counter
	ReportFailures   prometheus.Counter
	ReportOrders     prometheus.Counter
	ReportLatencySec prometheus.Histogram
	ExportsBuilt     prometheus.Counter
	ArchiveUploads   prometheus.Counter
	ArchiveFailures  prometheus.Counter

	// Checkout metrics
	RateQuotes        prometheus.Counter
	RateQuoteFailures prometheus.Counter
	RateLatencySec    prometheus.Histogram
	OrdersSubmitted   prometheus.Counter
	OrdersRejected    prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	reportRuns := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_report_runs_total"})
	reportFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_report_failures_total"})
	reportOrders := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_report_orders_total"})
	reportLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_report_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	exportsBuilt := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_report_exports_total"})
	archiveUploads := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_report_archive_uploads_total"})
	archiveFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_report_archive_failures_total"})

	rateQuotes := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_rate_quotes_total"})
	rateQuoteFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_rate_quote_failures_total"})
	rateLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_rate_quote_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	ordersSubmitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_orders_submitted_total"})
	ordersRejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_orders_rejected_total"})

	r.MustRegister(reportRuns, reportFailures, reportOrders, reportLatency, exportsBuilt, archiveUploads, archiveFailures,
		rateQuotes, rateQuoteFailures, rateLatency, ordersSubmitted, ordersRejected)
	return &Registry{
		reg:              r,
		ReportRuns:       reportRuns,
		ReportFailures:   reportFailures,
		ReportOrders:     reportOrders,
		ReportLatencySec: reportLatency,
		ExportsBuilt:     exportsBuilt,
		ArchiveUploads:   archiveUploads,
		ArchiveFailures:  archiveFailures,

		RateQuotes:        rateQuotes,
		RateQuoteFailures: rateQuoteFailures,
		RateLatencySec:    rateLatency,
		OrdersSubmitted:   ordersSubmitted,
		OrdersRejected:    ordersRejected,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

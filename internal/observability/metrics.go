package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	pageRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "web",
		Name:      "page_renders_total",
		Help:      "Dashboard page renders by view.",
	}, []string{"view"})

	chartRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "web",
		Name:      "chart_requests_total",
		Help:      "Chart API requests by chart name.",
	}, []string{"chart"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "web",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and status code.",
	}, []string{"method", "status"})

	datasetLoadSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fitdash",
		Subsystem: "dataset",
		Name:      "load_duration_seconds",
		Help:      "Wall time of the one-time CSV dataset load.",
		Buckets:   prometheus.DefBuckets,
	})

	datasetLoadErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "dataset",
		Name:      "load_errors_total",
		Help:      "Failed dataset loads.",
	})
)

func init() {
	prometheus.MustRegister(pageRenders, chartRequests, httpRequests, datasetLoadSeconds, datasetLoadErrors)
}

// ObservePageRender counts one render of the named view.
func ObservePageRender(view string) {
	pageRenders.WithLabelValues(view).Inc()
}

// ObserveChartRequest counts one chart API hit.
func ObserveChartRequest(chart string) {
	chartRequests.WithLabelValues(chart).Inc()
}

// ObserveRequest counts one completed HTTP request.
func ObserveRequest(method string, status int) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveDatasetLoad records the outcome of the one-time dataset load.
func ObserveDatasetLoad(d time.Duration, err error) {
	datasetLoadSeconds.Observe(d.Seconds())
	if err != nil {
		datasetLoadErrors.Inc()
	}
}

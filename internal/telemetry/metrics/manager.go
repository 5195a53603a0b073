package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests                *prometheus.CounterVec
	CounterHandleRequestPanic      prometheus.Counter
	CounterMeasurementsAdded       prometheus.Counter
	CounterInvalidMeasurementsSkip prometheus.Counter
	CounterReportsBuilt            prometheus.Counter
	CounterReportCacheHits         prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("bodystats", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("bodystats", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterMeasurementsAdded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "measurements_added",
		Help:      "The total number of added measurements",
	})
	counterInvalidMeasurementsSkip := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "invalid_measurements_skipped",
		Help:      "The total number of stored measurements left out of reports as implausible",
	})
	counterReportsBuilt := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reports_built",
		Help:      "The total number of progress reports computed",
	})
	counterReportCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "report_cache_hits",
		Help:      "The total number of progress reports served from cache",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:                counterRequests,
		CounterHandleRequestPanic:      counterHandleRequestPanic,
		CounterMeasurementsAdded:       counterMeasurementsAdded,
		CounterInvalidMeasurementsSkip: counterInvalidMeasurementsSkip,
		CounterReportsBuilt:            counterReportsBuilt,
		CounterReportCacheHits:         counterReportCacheHits,
		GaugeRequests:                  gaugeRequests,
		GaugeLifeSignal:                gaugeLifeSignal,
		HistogramRequestDuration:       histogramRequestDuration,
	}
}

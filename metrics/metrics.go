package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//nolint:gochecknoglobals
var (
	reg       = prometheus.NewRegistry()
	startOnce sync.Once
)

// RegisterMetric registers prometheus collector
func RegisterMetric(c prometheus.Collector) {
	_ = reg.Register(c)
}

// StartCollection registers the runtime collectors and the event listeners.
// Calling it more than once has no effect.
func StartCollection() {
	startOnce.Do(func() {
		_ = reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		_ = reg.Register(collectors.NewGoCollector())

		registerEventListeners()
	})
}

// Handler serves the collected metrics.
func Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(reg, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

// Gatherer returns the registry of all collected metrics.
func Gatherer() prometheus.Gatherer {
	return reg
}

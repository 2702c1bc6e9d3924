package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/0xERR0R/pslsplit/evt"
	"github.com/0xERR0R/pslsplit/log"
)

func registerEventListeners() {
	registerSuffixListEventListeners()
	registerApplicationEventListeners()
}

func registerApplicationEventListeners() {
	v := versionNumberGauge()
	RegisterMetric(v)

	subscribe(evt.ApplicationStarted, func(version, buildTime string) {
		v.WithLabelValues(version, buildTime).Set(1)
	})
}

func versionNumberGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pslsplit_build_info",
			Help: "Version number and build info",
		}, []string{"version", "build_time"},
	)
}

func registerSuffixListEventListeners() {
	ruleCount := ruleCountGauge()
	lastRefresh := lastRefreshGauge()
	refreshFailures := refreshFailureCount()
	failedDownloads := failedDownloadCount()
	cacheEntries := splitCacheEntryCount()

	RegisterMetric(ruleCount)
	RegisterMetric(lastRefresh)
	RegisterMetric(refreshFailures)
	RegisterMetric(failedDownloads)
	RegisterMetric(cacheEntries)

	subscribe(evt.SuffixListRefreshed, func(cnt int) {
		ruleCount.Set(float64(cnt))
		lastRefresh.Set(float64(time.Now().Unix()))
	})

	subscribe(evt.SuffixListRefreshFailed, func(_ string) {
		refreshFailures.Inc()
	})

	subscribe(evt.SuffixListDownloadFailed, func(_ string) {
		failedDownloads.Inc()
	})

	subscribe(evt.SuffixListSplitCacheChanged, func(cnt int) {
		cacheEntries.Set(float64(cnt))
	})
}

func ruleCountGauge() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pslsplit_suffix_list_rules",
			Help: "Number of rules in the published suffix list",
		},
	)
}

func lastRefreshGauge() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pslsplit_last_suffix_list_refresh_timestamp_seconds",
			Help: "Timestamp of last suffix list publication",
		},
	)
}

func refreshFailureCount() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pslsplit_suffix_list_refresh_failures_total",
		Help: "Failed suffix list refresh counter",
	})
}

func failedDownloadCount() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pslsplit_failed_downloads_total",
		Help: "Failed download counter",
	})
}

func splitCacheEntryCount() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pslsplit_split_cache_entries",
			Help: "Number of entries in the split result cache",
		},
	)
}

func subscribe(topic string, fn interface{}) {
	if err := evt.Bus().Subscribe(topic, fn); err != nil {
		log.Log().Fatal(fmt.Sprintf("can't subscribe topic '%s'", topic), err)
	}
}

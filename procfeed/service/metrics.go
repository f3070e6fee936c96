package service

import (
	"github.com/Gthulhu/procfeed/procfeed/broadcast"
	"github.com/Gthulhu/procfeed/procfeed/snapshot"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

const metricNamespace = "procfeed"

// MetricCollector exposes snapshot and broadcaster state as Prometheus
// metrics. Values are read at scrape time.
type MetricCollector struct {
	store       *snapshot.Store
	broadcaster *broadcast.Broadcaster

	refreshOK     *atomic.Uint64
	refreshFailed *atomic.Uint64

	processesDesc   *prometheus.Desc
	subscribersDesc *prometheus.Desc
	refreshDesc     *prometheus.Desc
	publishedDesc   *prometheus.Desc
	droppedDesc     *prometheus.Desc
}

func NewMetricCollector(store *snapshot.Store, broadcaster *broadcast.Broadcaster) *MetricCollector {
	return &MetricCollector{
		store:         store,
		broadcaster:   broadcaster,
		refreshOK:     atomic.NewUint64(0),
		refreshFailed: atomic.NewUint64(0),
		processesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "snapshot", "processes"),
			"Number of processes in the current snapshot.", nil, nil),
		subscribersDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "subscribers"),
			"Number of attached change feed subscribers.", nil, nil),
		refreshDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "refresh_total"),
			"Refresh attempts by result.", []string{"result"}, nil),
		publishedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "published_total"),
			"Newly observed entries published to the change feed.", nil, nil),
		droppedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "dropped_total"),
			"Entries discarded from lagging subscriber buffers.", nil, nil),
	}
}

func (c *MetricCollector) RefreshSucceeded() {
	c.refreshOK.Inc()
}

func (c *MetricCollector) RefreshFailed() {
	c.refreshFailed.Inc()
}

func (c *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processesDesc
	ch <- c.subscribersDesc
	ch <- c.refreshDesc
	ch <- c.publishedDesc
	ch <- c.droppedDesc
}

func (c *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.processesDesc, prometheus.GaugeValue, float64(c.store.Len()))
	ch <- prometheus.MustNewConstMetric(c.subscribersDesc, prometheus.GaugeValue, float64(c.broadcaster.Len()))
	ch <- prometheus.MustNewConstMetric(c.refreshDesc, prometheus.CounterValue, float64(c.refreshOK.Load()), "success")
	ch <- prometheus.MustNewConstMetric(c.refreshDesc, prometheus.CounterValue, float64(c.refreshFailed.Load()), "failure")
	ch <- prometheus.MustNewConstMetric(c.publishedDesc, prometheus.CounterValue, float64(c.broadcaster.Published()))
	ch <- prometheus.MustNewConstMetric(c.droppedDesc, prometheus.CounterValue, float64(c.broadcaster.Dropped()))
}

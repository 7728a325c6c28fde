package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TaskProcessed     *prometheus.CounterVec
	APIErrors         prometheus.Counter
	RequestSeconds    *prometheus.HistogramVec
	ActiveWorkers     prometheus.Gauge
	AddressesIngested *prometheus.CounterVec
	FilesIngested     *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		TaskProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "waypoint_addresses_resolved_total",
			Help: "Total number of processed address resolution tasks.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "waypoint_provider_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "waypoint_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "waypoint_active_workers",
			Help: "Current number of active workers processing tasks.",
		}),
		AddressesIngested: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "waypoint_addresses_ingested_total",
			Help: "Total number of addresses loaded into the queue from inbox files.",
		}, []string{"source"}),
		FilesIngested: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "waypoint_inbox_files_total",
			Help: "Total number of inbox files processed.",
		}, []string{"status"}),
	}
}

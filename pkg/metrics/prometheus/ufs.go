// Package prometheus implements component metrics on the registry owned by
// package metrics. Importing it registers the constructors.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/dittofs-ufs/pkg/metrics"
	"github.com/marmos91/dittofs-ufs/pkg/ufs"
	"github.com/marmos91/dittofs-ufs/pkg/ufs/wire"
)

func init() {
	metrics.RegisterUFSMetricsConstructor(NewUFSMetrics)
}

// ufsMetrics is the Prometheus implementation of ufs.Metrics.
type ufsMetrics struct {
	defaultsTotal    *prometheus.CounterVec
	defaultsDuration *prometheus.HistogramVec
	wireConversions  prometheus.Counter
	wireFieldsSet    *prometheus.CounterVec
}

// NewUFSMetrics creates a Prometheus-backed ufs.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewUFSMetrics() ufs.Metrics {
	if !metrics.IsEnabled() {
		return nil
	}
	return newUFSMetrics(metrics.GetRegistry())
}

func newUFSMetrics(reg prometheus.Registerer) *ufsMetrics {
	m := &ufsMetrics{
		defaultsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "dittofs_ufs_defaults_total",
				Help: "Total number of default create-file option resolutions by auth type and outcome",
			},
			[]string{"auth_type", "outcome"},
		),
		defaultsDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "dittofs_ufs_defaults_duration_milliseconds",
				Help: "Duration of default create-file option resolution in milliseconds",
				Buckets: []float64{
					0.05, // 50us - static providers
					0.1,
					0.5,
					1,  // 1ms - cached account database lookups
					5,
					10,
					50, // 50ms - NSS over the network
					100,
					500,
					1000,
				},
			},
			[]string{"auth_type"},
		),
		wireConversions: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "dittofs_ufs_wire_conversions_total",
				Help: "Total number of create-file options converted to wire messages",
			},
		),
		wireFieldsSet: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "dittofs_ufs_wire_fields_set_total",
				Help: "Number of wire messages carrying each optional field",
			},
			[]string{"field"},
		),
	}

	// Pre-create label values so absent fields export a zero
	for _, f := range []string{wire.FieldUser, wire.FieldGroup, wire.FieldPosixPerm} {
		m.wireFieldsSet.WithLabelValues(f)
	}
	return m
}

// ObserveDefaults implements ufs.Metrics.
func (m *ufsMetrics) ObserveDefaults(authType, outcome string, duration time.Duration) {
	m.defaultsTotal.WithLabelValues(authType, outcome).Inc()
	m.defaultsDuration.WithLabelValues(authType).Observe(float64(duration.Microseconds()) / 1000.0)
}

// ObserveWireConversion implements ufs.Metrics.
func (m *ufsMetrics) ObserveWireConversion(fields []string) {
	m.wireConversions.Inc()
	for _, f := range fields {
		m.wireFieldsSet.WithLabelValues(f).Inc()
	}
}

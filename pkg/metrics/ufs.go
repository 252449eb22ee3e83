package metrics

import (
	"github.com/marmos91/dittofs-ufs/pkg/ufs"
)

// NewUFSMetrics creates a Prometheus-backed ufs.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
// When nil is returned, callers should pass nil to ufs.NewFactory,
// which results in zero overhead.
//
// Example usage:
//
//	metrics.InitRegistry()
//	factory := ufs.NewFactory(provider, metrics.NewUFSMetrics())
func NewUFSMetrics() ufs.Metrics {
	if !IsEnabled() || newPrometheusUFSMetrics == nil {
		return nil
	}
	return newPrometheusUFSMetrics()
}

// newPrometheusUFSMetrics is implemented in pkg/metrics/prometheus/ufs.go.
// This indirection avoids import cycles while keeping the API clean.
var newPrometheusUFSMetrics func() ufs.Metrics

// RegisterUFSMetricsConstructor registers the Prometheus ufs metrics constructor.
// Called by pkg/metrics/prometheus during package initialization.
func RegisterUFSMetricsConstructor(constructor func() ufs.Metrics) {
	newPrometheusUFSMetrics = constructor
}

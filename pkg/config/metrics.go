package config

import (
	"github.com/marmos91/dittofs-ufs/internal/telemetry"
	"github.com/marmos91/dittofs-ufs/pkg/metrics"
	_ "github.com/marmos91/dittofs-ufs/pkg/metrics/prometheus" // registers metric constructors
	"github.com/marmos91/dittofs-ufs/pkg/ufs"
)

// MetricsResult holds what InitializeMetrics created.
// All fields are nil when metrics are disabled.
type MetricsResult struct {
	// Server exposes /metrics for long-running commands
	Server *metrics.Server

	// UFSMetrics is passed to ufs.NewFactory
	UFSMetrics ufs.Metrics
}

// InitializeMetrics creates the registry and component metrics when
// metrics are enabled. It must run before components are constructed.
func InitializeMetrics(cfg *Config) *MetricsResult {
	if !cfg.Metrics.Enabled {
		metrics.ResetRegistry()
		return &MetricsResult{}
	}

	metrics.InitRegistry()
	return &MetricsResult{
		Server:     metrics.NewServer(cfg.Metrics.Port),
		UFSMetrics: metrics.NewUFSMetrics(),
	}
}

// TelemetryConfig converts the telemetry section for telemetry.Init.
func (c *Config) TelemetryConfig(version string) telemetry.Config {
	tc := telemetry.DefaultConfig()
	tc.Enabled = c.Telemetry.Enabled
	tc.Endpoint = c.Telemetry.Endpoint
	tc.Insecure = c.Telemetry.Insecure
	tc.SampleRate = c.Telemetry.SampleRate
	if version != "" {
		tc.ServiceVersion = version
	}
	return tc
}

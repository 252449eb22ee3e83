package config

import (
	"testing"

	"github.com/marmos91/dittofs-ufs/pkg/metrics"
)

func TestInitializeMetrics_Disabled(t *testing.T) {
	cfg := GetDefaultConfig()

	result := InitializeMetrics(cfg)
	if result.Server != nil || result.UFSMetrics != nil {
		t.Errorf("Expected no metrics when disabled, got %+v", result)
	}
	if metrics.IsEnabled() {
		t.Error("Expected registry to stay disabled")
	}
}

func TestInitializeMetrics_Enabled(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Metrics.Enabled = true
	ApplyDefaults(cfg)
	t.Cleanup(metrics.ResetRegistry)

	result := InitializeMetrics(cfg)
	if result.Server == nil {
		t.Error("Expected metrics server")
	}
	if result.UFSMetrics == nil {
		t.Error("Expected ufs metrics")
	}
}

func TestTelemetryConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Endpoint = "otel:4317"

	tc := cfg.TelemetryConfig("v1.2.3")
	if !tc.Enabled || tc.Endpoint != "otel:4317" {
		t.Errorf("Unexpected telemetry config %+v", tc)
	}
	if tc.ServiceVersion != "v1.2.3" || tc.ServiceName != "dittofs-ufs" {
		t.Errorf("Unexpected service identity %+v", tc)
	}
}

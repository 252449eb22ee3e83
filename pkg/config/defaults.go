package config

import (
	"strings"

	"github.com/marmos91/dittofs-ufs/pkg/security"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
//   - Enumerations are normalized to their canonical case
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
	applySecurityDefaults(&cfg.Security)
	applyUFSDefaults(&cfg.UFS)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
}

// applyMetricsDefaults sets metrics defaults.
func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Enabled && cfg.Port == 0 {
		cfg.Port = 9090
	}
}

// applySecurityDefaults sets the login module and group mapping defaults.
func applySecurityDefaults(cfg *SecurityConfig) {
	if cfg.AuthenticationType == "" {
		cfg.AuthenticationType = string(security.AuthSimple)
	}
	cfg.AuthenticationType = strings.ToUpper(strings.TrimSpace(cfg.AuthenticationType))

	if cfg.GroupMapping.Type == "" {
		cfg.GroupMapping.Type = GroupMappingUnix
	}
	cfg.GroupMapping.Type = strings.ToLower(cfg.GroupMapping.Type)
}

// applyUFSDefaults sets the default permission and umask.
func applyUFSDefaults(cfg *UFSConfig) {
	if cfg.DefaultPermission == "" {
		cfg.DefaultPermission = ModeString(security.DefaultMode.String())
	}
	if cfg.Umask == "" {
		cfg.Umask = ModeString(security.DefaultUmask.String())
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Package telemetry wires OpenTelemetry tracing for identity resolution and
// wire conversion. Tracing is off unless enabled; spans are then no-ops.
package telemetry

// Config describes the OTLP trace exporter.
type Config struct {
	Enabled bool

	// ServiceName and ServiceVersion end up on the trace resource
	ServiceName    string
	ServiceVersion string

	// Endpoint is the OTLP gRPC collector, host:port
	Endpoint string
	Insecure bool

	// SampleRate is clamped to [0, 1]
	SampleRate float64
}

// DefaultConfig returns tracing disabled, pointed at a local collector.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "dittofs-ufs",
		ServiceVersion: "dev",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SampleRate:     1.0,
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ServiceName == "" {
		c.ServiceName = def.ServiceName
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = def.ServiceVersion
	}
	if c.Endpoint == "" {
		c.Endpoint = def.Endpoint
	}
	c.SampleRate = min(max(c.SampleRate, 0), 1)
	return c
}

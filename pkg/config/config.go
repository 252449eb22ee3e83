package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the DittoFS UFS client configuration.
//
// It captures everything needed to resolve default create-file options:
//   - Logging configuration
//   - Telemetry/tracing configuration
//   - Metrics configuration
//   - Security: how the login user and its group are resolved
//   - UFS: default permission and umask for new files
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (DITTOFS_UFS_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Telemetry controls OpenTelemetry distributed tracing
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`

	// Metrics contains Prometheus metrics configuration
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Security selects the login module and the group mapping
	Security SecurityConfig `mapstructure:"security" yaml:"security"`

	// UFS contains defaults applied to files created in the UFS
	UFS UFSConfig `mapstructure:"ufs" yaml:"ufs"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR" yaml:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// TelemetryConfig controls OpenTelemetry distributed tracing.
// When enabled, trace data is exported to an OTLP-compatible collector.
type TelemetryConfig struct {
	// Enabled controls whether distributed tracing is enabled
	// Default: false (opt-in for telemetry)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Endpoint is the OTLP collector endpoint (host:port)
	// Default: "localhost:4317" (standard OTLP gRPC port)
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Insecure controls whether to use insecure (non-TLS) connection
	Insecure bool `mapstructure:"insecure" yaml:"insecure"`

	// SampleRate controls the trace sampling rate (0.0 to 1.0)
	// Default: 1.0 (sample all)
	SampleRate float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate"`
}

// MetricsConfig configures Prometheus metrics.
// When Enabled is false, no metrics are collected (zero overhead).
type MetricsConfig struct {
	// Enabled controls whether metrics are collected
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port for the metrics endpoint of long-running commands
	// Default: 9090
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// SecurityConfig selects how the owner of new UFS files is resolved.
type SecurityConfig struct {
	// AuthenticationType is the login module: NOSASL, SIMPLE, CUSTOM or KERBEROS
	// Default: SIMPLE
	AuthenticationType string `mapstructure:"authentication_type" validate:"required,oneof=NOSASL SIMPLE CUSTOM KERBEROS" yaml:"authentication_type"`

	// Login configures SIMPLE and CUSTOM authentication
	Login LoginConfig `mapstructure:"login" yaml:"login"`

	// Kerberos configures KERBEROS authentication.
	// Environment variable overrides:
	//   DITTOFS_UFS_KRB5CCNAME overrides CCachePath
	//   DITTOFS_UFS_KERBEROS_KEYTAB overrides KeytabPath
	Kerberos KerberosConfig `mapstructure:"kerberos" yaml:"kerberos"`

	// GroupMapping resolves the primary group of the login user
	GroupMapping GroupMappingConfig `mapstructure:"group_mapping" yaml:"group_mapping"`
}

// LoginConfig configures SIMPLE and CUSTOM login.
type LoginConfig struct {
	// Username replaces the OS user as the login user. Empty uses the OS user.
	Username string `mapstructure:"username" yaml:"username,omitempty"`
}

// KerberosConfig locates the client's Kerberos credentials.
type KerberosConfig struct {
	// CCachePath is the FILE credential cache. Empty uses KRB5CCNAME,
	// then /tmp/krb5cc_<uid>.
	CCachePath string `mapstructure:"ccache_path" yaml:"ccache_path,omitempty"`

	// KeytabPath is read when the credential cache is unavailable.
	KeytabPath string `mapstructure:"keytab_path" yaml:"keytab_path,omitempty"`

	// Principal selects the keytab entry. Empty uses the first entry.
	// Format: primary[/instance][@REALM]
	Principal string `mapstructure:"principal" yaml:"principal,omitempty"`
}

// GroupMappingConfig selects the user -> groups resolver.
type GroupMappingConfig struct {
	// Type is "unix" (local account database) or "static"
	// Default: "unix"
	Type string `mapstructure:"type" validate:"required,oneof=unix static" yaml:"type"`

	// Static maps user names to groups; the first group is the primary group.
	// Only used when Type is "static".
	// Example: {"alice": ["staff", "wheel"]}
	Static map[string][]string `mapstructure:"static" yaml:"static,omitempty"`
}

// UFSConfig holds defaults for new UFS files.
type UFSConfig struct {
	// DefaultPermission is the mode before the umask is applied, in octal.
	// Default: "0777"
	DefaultPermission ModeString `mapstructure:"default_permission" validate:"required,posixmode" yaml:"default_permission"`

	// Umask is cleared from DefaultPermission, in octal.
	// Default: "0000"
	Umask ModeString `mapstructure:"umask" validate:"required,posixmode" yaml:"umask"`
}

// ModeString is an octal permission string such as "0755".
//
// YAML reads an unquoted 0755 as the integer 493; the decode hook turns it
// back into the octal string.
type ModeString string

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (DITTOFS_UFS_*)
//  2. Configuration file
//  3. Default values
//
// A missing configuration file is not an error; defaults (with environment
// overrides) are used instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	// Unmarshal into config struct with custom decode hooks
	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration with helpful error messages.
// Unlike Load, an explicitly given path must exist.
func MustLoad(configPath string) (*Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s\n\n"+
				"Please create the configuration file:\n"+
				"  ufsctl config init --config %s",
				configPath, configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path in YAML format.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use DITTOFS_UFS_ prefix and underscores
	// Example: DITTOFS_UFS_SECURITY_AUTHENTICATION_TYPE=NOSASL
	v.SetEnvPrefix("DITTOFS_UFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/dittofs-ufs/config.yaml
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// bindEnvKeys registers every scalar key so AutomaticEnv can override it
// even when the key is absent from the config file.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"logging.level",
		"logging.format",
		"logging.output",
		"telemetry.enabled",
		"telemetry.endpoint",
		"telemetry.insecure",
		"telemetry.sample_rate",
		"metrics.enabled",
		"metrics.port",
		"security.authentication_type",
		"security.login.username",
		"security.kerberos.ccache_path",
		"security.kerberos.keytab_path",
		"security.kerberos.principal",
		"security.group_mapping.type",
		"ufs.default_permission",
		"ufs.umask",
	} {
		_ = v.BindEnv(key)
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		modeStringDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// modeStringDecodeHook converts integers decoded from YAML back to octal
// ModeString values, so both `umask: "022"` and `umask: 022` work.
func modeStringDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(ModeString("")) {
			return data, nil
		}

		switch v := data.(type) {
		case int:
			return ModeString(fmt.Sprintf("%04o", v)), nil
		case int64:
			return ModeString(fmt.Sprintf("%04o", v)), nil
		case uint64:
			return ModeString(fmt.Sprintf("%04o", v)), nil
		case float64:
			return ModeString(fmt.Sprintf("%04o", int64(v))), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "dittofs-ufs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "dittofs-ufs")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks if a config file exists at the default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// GetConfigDir returns the configuration directory path (exposed for init command).
func GetConfigDir() string {
	return getConfigDir()
}

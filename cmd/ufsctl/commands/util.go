package commands

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/internal/cli/output"
	"github.com/marmos91/dittofs-ufs/internal/logger"
	"github.com/marmos91/dittofs-ufs/internal/telemetry"
	"github.com/marmos91/dittofs-ufs/pkg/config"
	"github.com/marmos91/dittofs-ufs/pkg/optional"
	"github.com/marmos91/dittofs-ufs/pkg/ufs"
	"github.com/marmos91/dittofs-ufs/pkg/ufs/wire"
)

// env is what commands that resolve identity need at runtime.
type env struct {
	cfg      *config.Config
	factory  *ufs.Factory
	metrics  *config.MetricsResult
	shutdown func(context.Context) error
}

// setupEnv loads configuration and brings up logging, tracing, metrics and
// the identity provider, in that order.
func setupEnv(cmd *cobra.Command) (*env, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return nil, err
	}

	shutdown, err := telemetry.Init(cmd.Context(), cfg.TelemetryConfig(Version))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	metricsResult := config.InitializeMetrics(cfg)

	provider, err := cfg.CreateIdentityProvider()
	if err != nil {
		_ = shutdown(cmd.Context())
		return nil, fmt.Errorf("failed to create identity provider: %w", err)
	}

	logger.Debug("Configuration loaded",
		logger.KeyAuthType, string(provider.AuthType()),
		"group_mapping", cfg.Security.GroupMapping.Type,
		"telemetry", telemetry.IsEnabled())

	return &env{
		cfg:      cfg,
		factory:  ufs.NewFactory(provider, metricsResult.UFSMetrics),
		metrics:  metricsResult,
		shutdown: shutdown,
	}, nil
}

// printerFor builds a Printer from the persistent --output and --no-color flags.
func printerFor(cmd *cobra.Command) (*output.Printer, error) {
	outputFlag, _ := cmd.Flags().GetString("output")
	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return nil, err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	return output.NewPrinter(cmd.OutOrStdout(), format, !noColor), nil
}

// optionsView is how options are shown to the user.
type optionsView struct {
	User      optional.Value[string] `json:"user" yaml:"user"`
	Group     optional.Value[string] `json:"group" yaml:"group"`
	PosixPerm optional.Value[string] `json:"posix_perm" yaml:"posix_perm"`
	Wire      string                 `json:"wire,omitempty" yaml:"wire,omitempty"`
}

func newOptionsView(opts *ufs.CreateFileOptions) *optionsView {
	return &optionsView{
		User:      opts.User(),
		Group:     opts.Group(),
		PosixPerm: opts.PosixPerm(),
	}
}

// withWire attaches the hex XDR encoding of msg.
func (v *optionsView) withWire(msg *wire.CreateFileOptions) (*optionsView, error) {
	data, err := msg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode wire message: %w", err)
	}
	v.Wire = hex.EncodeToString(data)
	return v, nil
}

// Headers implements output.TableRenderer.
func (v *optionsView) Headers() []string {
	return v.table().Headers()
}

// Rows implements output.TableRenderer.
func (v *optionsView) Rows() [][]string {
	rows := v.table().Rows()
	if v.Wire != "" {
		rows = append(rows, []string{"wire", "yes", v.Wire})
	}
	return rows
}

func (v *optionsView) table() *output.FieldTable {
	return output.NewFieldTable().
		Add(wire.FieldUser, v.User).
		Add(wire.FieldGroup, v.Group).
		Add(wire.FieldPosixPerm, v.PosixPerm)
}

package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

func newWatchCmd() *cobra.Command {
	var (
		interval time.Duration
		count    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resolve default options periodically",
		Long: `Resolve default create-file options every --interval and log the result.

Useful to spot login changes such as an expired Kerberos credential cache.
When metrics.enabled is set, /metrics is served on metrics.port while
watching. Stops on SIGINT/SIGTERM or after --count resolutions.

Examples:
  ufsctl watch --interval 30s
  ufsctl watch --count 3 --log-level DEBUG`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			e, err := setupEnv(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.shutdown(context.Background()) }()

			if e.metrics.Server != nil {
				go func() {
					if err := e.metrics.Server.Start(ctx); err != nil {
						logger.Error("Metrics server failed", logger.Err(err))
					}
				}()
			}

			return watchDefaults(ctx, cmd, e, interval, count)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "Time between resolutions")
	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many resolutions (0 = until interrupted)")
	return cmd
}

func watchDefaults(ctx context.Context, cmd *cobra.Command, e *env, interval time.Duration, count int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last string
	for n := 1; ; n++ {
		opts, err := e.factory.Defaults(ctx)
		switch {
		case err != nil && ufserrors.IsIdentityResolutionError(err):
			// Keep watching; the login may become available again
			logger.Warn("Identity resolution failed", logger.Err(err))
		case err != nil:
			return err
		default:
			current := opts.String()
			if current != last {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", time.Now().Format(time.RFC3339), current)
				last = current
			}
		}

		if count > 0 && n >= count {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

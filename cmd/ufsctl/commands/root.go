// Package commands implements the ufsctl command line.
package commands

import (
	"github.com/spf13/cobra"

	configcmd "github.com/marmos91/dittofs-ufs/cmd/ufsctl/commands/config"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd builds the ufsctl command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ufsctl",
		Short: "DittoFS UFS client options tool",
		Long: `ufsctl resolves, encodes and decodes the options a DittoFS client sends
when it creates a file in the underlying file system (UFS).

The owner, group and permission of new files come from the configured login
module (NOSASL, SIMPLE, CUSTOM or KERBEROS) and group mapping.

Use "ufsctl [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: $XDG_CONFIG_HOME/dittofs-ufs/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Override logging.level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(configcmd.NewCmd())

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

// Execute runs the ufsctl command line.
func Execute() error {
	return NewRootCmd().Execute()
}

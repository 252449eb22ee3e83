// Package config implements the "ufsctl config" commands.
package config

import "github.com/spf13/cobra"

// NewCmd builds the config command group.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ufsctl configuration file",
		Long: `Create, validate and describe the ufsctl configuration file.

The default location is $XDG_CONFIG_HOME/dittofs-ufs/config.yaml
(~/.config/dittofs-ufs/config.yaml when XDG_CONFIG_HOME is unset).`,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newSchemaCmd())
	return cmd
}

package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/pkg/config"
	"github.com/marmos91/dittofs-ufs/pkg/security"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the ufsctl configuration file.

Checks for syntax errors, missing required fields, and invalid values, then
builds the identity provider to catch unusable security settings.

Examples:
  # Validate default config
  ufsctl config validate

  # Validate specific config file
  ufsctl config validate --config /etc/dittofs-ufs/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	if _, err := cfg.CreateIdentityProvider(); err != nil {
		return fmt.Errorf("invalid security configuration: %w", err)
	}

	displayPath := configPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
		if !config.DefaultConfigExists() {
			displayPath += " (not found, using defaults)"
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file: %s\n", displayPath)
	_, _ = fmt.Fprintln(out, "Validation: OK")

	if warnings := validationWarnings(cfg); len(warnings) > 0 {
		_, _ = fmt.Fprintln(out, "\nWarnings:")
		for _, w := range warnings {
			_, _ = fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	_, _ = fmt.Fprintf(out, "\nConfiguration summary:\n")
	_, _ = fmt.Fprintf(out, "  Authentication:     %s\n", cfg.Security.AuthenticationType)
	_, _ = fmt.Fprintf(out, "  Group mapping:      %s\n", cfg.Security.GroupMapping.Type)
	_, _ = fmt.Fprintf(out, "  Default permission: %s\n", cfg.UFS.DefaultPermission)
	_, _ = fmt.Fprintf(out, "  Umask:              %s\n", cfg.UFS.Umask)
	_, _ = fmt.Fprintf(out, "  Log level:          %s\n", cfg.Logging.Level)
	return nil
}

// validationWarnings reports settings that load fine but are likely mistakes.
func validationWarnings(cfg *config.Config) []string {
	var warnings []string

	authType := security.AuthType(cfg.Security.AuthenticationType)
	if authType == security.AuthNoSASL {
		warnings = append(warnings, "NOSASL never sets an owner or group on new files")
	}
	if cfg.Security.Login.Username != "" &&
		authType != security.AuthSimple && authType != security.AuthCustom {
		warnings = append(warnings, "security.login.username is only used by SIMPLE and CUSTOM")
	}
	if authType == security.AuthKerberos && cfg.Security.Kerberos.KeytabPath == "" {
		warnings = append(warnings, "no keytab configured; KERBEROS needs a valid credential cache (kinit)")
	}
	if cfg.Security.GroupMapping.Type != config.GroupMappingStatic && len(cfg.Security.GroupMapping.Static) > 0 {
		warnings = append(warnings, "security.group_mapping.static is ignored unless type is static")
	}
	return warnings
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/internal/cli/prompt"
	"github.com/marmos91/dittofs-ufs/pkg/config"
	"github.com/marmos91/dittofs-ufs/pkg/security"
)

func newInitCmd() *cobra.Command {
	var (
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a ufsctl configuration file with default values.

With --interactive, the login module, group mapping, default permission and
umask are asked for instead of using defaults.

Examples:
  # Write defaults to the default location
  ufsctl config init

  # Answer questions, write to a custom path
  ufsctl config init --interactive --config ./ufs.yaml

  # Replace an existing file
  ufsctl config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.GetDefaultConfigPath()
			}

			cfg := config.GetDefaultConfig()
			if interactive {
				if err := configureInteractive(cfg, terminalPrompter{}); err != nil {
					if prompt.IsAborted(err) {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
						return nil
					}
					return err
				}
			}

			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err := config.WriteConfig(cfg, path, force); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for each setting")
	return cmd
}

// prompter asks the user for configuration values.
type prompter interface {
	Select(label string, options []prompt.SelectOption, current string) (string, error)
	Input(label, defaultValue string, validate func(string) error) (string, error)
	Confirm(label string, defaultYes bool) (bool, error)
}

type terminalPrompter struct{}

func (terminalPrompter) Select(label string, options []prompt.SelectOption, current string) (string, error) {
	return prompt.Select(label, options, current)
}

func (terminalPrompter) Input(label, defaultValue string, validate func(string) error) (string, error) {
	return prompt.InputWithValidation(label, defaultValue, validate)
}

func (terminalPrompter) Confirm(label string, defaultYes bool) (bool, error) {
	return prompt.Confirm(label, defaultYes)
}

var authTypeOptions = []prompt.SelectOption{
	{Label: "SIMPLE", Value: string(security.AuthSimple), Description: "OS user, or the configured username"},
	{Label: "CUSTOM", Value: string(security.AuthCustom), Description: "Same resolution as SIMPLE for a custom login module"},
	{Label: "KERBEROS", Value: string(security.AuthKerberos), Description: "Short name of the Kerberos client principal"},
	{Label: "NOSASL", Value: string(security.AuthNoSASL), Description: "No owner or group is sent"},
}

var groupMappingOptions = []prompt.SelectOption{
	{Label: "unix", Value: config.GroupMappingUnix, Description: "Groups from the local account database"},
	{Label: "static", Value: config.GroupMappingStatic, Description: "Groups listed in the configuration file"},
}

// configureInteractive fills the security and ufs sections of cfg from p.
func configureInteractive(cfg *config.Config, p prompter) error {
	sec := &cfg.Security

	authType, err := p.Select("Authentication type", authTypeOptions, sec.AuthenticationType)
	if err != nil {
		return err
	}
	sec.AuthenticationType = authType

	switch security.AuthType(authType) {
	case security.AuthSimple, security.AuthCustom:
		if sec.Login.Username, err = p.Input("Login username (empty = OS user)", sec.Login.Username, nil); err != nil {
			return err
		}
	case security.AuthKerberos:
		if sec.Kerberos.CCachePath, err = p.Input("Credential cache path (empty = KRB5CCNAME)", sec.Kerberos.CCachePath, nil); err != nil {
			return err
		}
		if sec.Kerberos.KeytabPath, err = p.Input("Keytab path (optional)", sec.Kerberos.KeytabPath, nil); err != nil {
			return err
		}
		if sec.Kerberos.KeytabPath != "" {
			if sec.Kerberos.Principal, err = p.Input("Keytab principal (empty = first entry)", sec.Kerberos.Principal, nil); err != nil {
				return err
			}
		}
	}

	if security.AuthType(authType).ResolvesIdentity() {
		if err := configureGroupMapping(&sec.GroupMapping, p); err != nil {
			return err
		}
	}

	perm, err := p.Input("Default permission (octal)", string(cfg.UFS.DefaultPermission), validateMode)
	if err != nil {
		return err
	}
	umask, err := p.Input("Umask (octal)", string(cfg.UFS.Umask), validateMode)
	if err != nil {
		return err
	}
	cfg.UFS.DefaultPermission = config.ModeString(strings.TrimSpace(perm))
	cfg.UFS.Umask = config.ModeString(strings.TrimSpace(umask))
	return nil
}

func configureGroupMapping(gm *config.GroupMappingConfig, p prompter) error {
	mappingType, err := p.Select("Group mapping", groupMappingOptions, gm.Type)
	if err != nil {
		return err
	}
	gm.Type = mappingType
	if mappingType != config.GroupMappingStatic {
		return nil
	}

	if gm.Static == nil {
		gm.Static = make(map[string][]string)
	}
	for {
		user, err := p.Input("User name", "", validateNotEmpty)
		if err != nil {
			return err
		}
		groups, err := p.Input("Groups for "+user+" (comma separated, primary first)", "", validateNotEmpty)
		if err != nil {
			return err
		}
		gm.Static[strings.TrimSpace(user)] = splitGroups(groups)

		more, err := p.Confirm("Add another user", false)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func splitGroups(s string) []string {
	var groups []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

func validateMode(s string) error {
	_, err := security.ParseMode(s)
	return err
}

func validateNotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

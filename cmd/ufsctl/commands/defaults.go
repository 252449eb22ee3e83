package commands

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/pkg/optional"
)

func newDefaultsCmd() *cobra.Command {
	var (
		posixPerm string
		showWire  bool
	)

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Resolve default create-file options",
		Long: `Resolve the options a new UFS file would be created with.

The owner comes from the configured login module, the group from the group
mapping, and the permission from ufs.default_permission with ufs.umask
applied.

Examples:
  # Show the defaults for the current login
  ufsctl defaults

  # Override the permission and show the wire encoding
  ufsctl defaults --posix-perm 0600 --wire -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setupEnv(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.shutdown(cmd.Context()) }()

			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			opts, err := e.factory.Defaults(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("posix-perm") {
				opts.SetPosixPerm(optional.Of(posixPerm))
			}

			view := newOptionsView(opts)
			if showWire {
				if view, err = view.withWire(e.factory.ToWire(opts)); err != nil {
					return err
				}
			}
			return printer.Print(view)
		},
	}

	cmd.Flags().StringVar(&posixPerm, "posix-perm", "", "Replace the resolved permission (not validated)")
	cmd.Flags().BoolVar(&showWire, "wire", false, "Include the hex XDR wire encoding")
	return cmd
}

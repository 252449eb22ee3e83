package commands

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/pkg/optional"
	"github.com/marmos91/dittofs-ufs/pkg/ufs"
)

func newEncodeCmd() *cobra.Command {
	var user, group, posixPerm string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode explicit create-file options",
		Long: `Build create-file options from flags and print their XDR wire encoding.

A field is only set when its flag is given; --user "" sets an empty owner,
omitting --user leaves the owner unset. Values are not validated.

Examples:
  ufsctl encode --user alice --posix-perm 0644
  ufsctl encode --group "" -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			opts := ufs.NewCreateFileOptions(
				flagValue(cmd, "user", user),
				flagValue(cmd, "group", group),
				flagValue(cmd, "posix-perm", posixPerm),
			)

			view, err := newOptionsView(opts).withWire(opts.ToWire())
			if err != nil {
				return err
			}
			return printer.Print(view)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Owner name")
	cmd.Flags().StringVar(&group, "group", "", "Owning group name")
	cmd.Flags().StringVar(&posixPerm, "posix-perm", "", "POSIX permission string, e.g. 0644")
	return cmd
}

// flagValue is present only when the flag was given on the command line.
func flagValue(cmd *cobra.Command, name, value string) optional.Value[string] {
	if !cmd.Flags().Changed(name) {
		return optional.None[string]()
	}
	return optional.Of(value)
}

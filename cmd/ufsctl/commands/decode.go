package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittofs-ufs/pkg/ufs"
	"github.com/marmos91/dittofs-ufs/pkg/ufs/wire"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a create-file options wire message",
		Long: `Decode hex-encoded XDR create-file options and show which fields are set.

Examples:
  ufsctl decode 0000000100000005616c6963650000000000000000000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(args[0]), "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}

			msg, err := wire.Unmarshal(data)
			if err != nil {
				return err
			}
			return printer.Print(newOptionsView(ufs.FromWire(msg)))
		},
	}
}

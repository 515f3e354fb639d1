package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/familytree/pkg/types"
)

func newPostcodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "postcode <value>",
		Short: "Validate a postal code",
		Long: `Postcode validates a postal-code character set and prints its display form.

Accepted values are letters and digits with at most one embedded run of
spaces or hyphens.

Example:
  familytree postcode "SW1A 1AA"
  familytree postcode 12345-6789`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := types.NewPostalCode(args[0])
			if err != nil {
				a.logger.Debug("postal code rejected", "value", args[0], "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pc)
			return nil
		},
	}
}

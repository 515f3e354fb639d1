package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddressCmd(a *app) *cobra.Command {
	var flags addressFlags

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Validate an address",
		Long: `Address validates a street number and postal code and prints the
address display form.

Example:
  familytree address --number 12 --street "High St" --city Bath --postcode "BA1 1AA"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := flags.build()
			if err != nil {
				a.logger.Debug("address rejected", "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

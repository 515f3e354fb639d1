package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonCmd(a *app) *cobra.Command {
	var flags personFlags

	cmd := &cobra.Command{
		Use:   "person",
		Short: "Build a person and print it",
		Long: `Person builds a person from a name, sex, optional address, and biography
and prints the person display form.

Example:
  familytree person --forename Ada --midname Augusta --surname King --sex female
  familytree person --forename Tom --number 3 --street "Main St" --postcode 2000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.build(a.defaultSex)
			if err != nil {
				return err
			}
			a.logger.Debug("person built", "name", p.Name().FullName(), "sex", p.Sex())
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

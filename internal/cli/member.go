package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/familytree/pkg/types"
)

func newMemberCmd(a *app) *cobra.Command {
	var (
		flags      personFlags
		familyName string
		children   []string
		removals   []string
	)

	cmd := &cobra.Command{
		Use:   "member",
		Short: "Build a family member with children and print it",
		Long: `Member builds a family member, adds each --child in order, removes each
--remove-child by name, and prints the result of every operation followed by
the member display form.

Names are given as "Forename,Midname,Surname"; trailing parts may be omitted.
Children get the configured default sex and no address.

Example:
  familytree member --forename Ann --surname Smith --family-name Smith \
    --child "Tom,,Smith" --child "Sue,,Smith" --remove-child "Tom,,Smith"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.build(a.defaultSex)
			if err != nil {
				return err
			}
			m := types.NewFamilyMember(p, familyName, nil, nil, nil, types.NewChildSet())
			out := cmd.OutOrStdout()

			for _, c := range children {
				name, err := parseName(c)
				if err != nil {
					return err
				}
				added, err := m.AddChild(types.NewPerson(name, a.defaultSex, types.Address{}, ""))
				if err != nil {
					return fmt.Errorf("add child %q: %w", c, err)
				}
				a.logger.Debug("add child", "name", name.FullName(), "added", added)
				fmt.Fprintf(out, "add %s: %t\n", name, added)
			}

			for _, r := range removals {
				name, err := parseName(r)
				if err != nil {
					return err
				}
				removed, err := m.RemoveChild(name)
				if err != nil {
					return fmt.Errorf("remove child %q: %w", r, err)
				}
				a.logger.Debug("remove child", "name", name.FullName(), "removed", removed)
				fmt.Fprintf(out, "remove %s: %t\n", name, removed)
			}

			fmt.Fprintln(out, m)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&familyName, "family-name", "", "family name")
	cmd.Flags().StringArrayVar(&children, "child", nil, `child name "Forename,Midname,Surname" (repeatable)`)
	cmd.Flags().StringArrayVar(&removals, "remove-child", nil, "child name to remove (repeatable)")
	return cmd
}

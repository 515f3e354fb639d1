package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/familytree/pkg/types"
)

// errUsage marks malformed flag values that are not model validation errors.
var errUsage = errors.New("invalid usage")

// addressFlags collects the flags that describe an Address.
type addressFlags struct {
	number   int
	street   string
	city     string
	postcode string
}

func (f *addressFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.number, "number", 0, "street number (must be positive)")
	cmd.Flags().StringVar(&f.street, "street", "", "street name")
	cmd.Flags().StringVar(&f.city, "city", "", "city name")
	cmd.Flags().StringVar(&f.postcode, "postcode", "", "postal code")
}

func (f *addressFlags) empty() bool {
	return *f == addressFlags{}
}

// build validates the flags and returns the Address they describe.
func (f *addressFlags) build() (types.Address, error) {
	pc, err := types.NewPostalCode(f.postcode)
	if err != nil {
		return types.Address{}, fmt.Errorf("postcode: %w", err)
	}
	a, err := types.NewAddress(f.number, f.street, f.city, pc)
	if err != nil {
		return types.Address{}, fmt.Errorf("address: %w", err)
	}
	return a, nil
}

// personFlags collects the flags that describe a Person. Address flags are
// optional; when none is given the person has no address.
type personFlags struct {
	forename  string
	midname   string
	surname   string
	sex       string
	biography string
	address   addressFlags
}

func (f *personFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.forename, "forename", "", "forename")
	cmd.Flags().StringVar(&f.midname, "midname", "", "middle name(s)")
	cmd.Flags().StringVar(&f.surname, "surname", "", "surname")
	cmd.Flags().StringVar(&f.sex, "sex", "", "sex: male, female, unspecified (default from config)")
	cmd.Flags().StringVar(&f.biography, "biography", "", "free-text biography")
	f.address.register(cmd)
}

// build validates the flags and returns the Person they describe.
func (f *personFlags) build(defaultSex types.Sex) (*types.Person, error) {
	sex := defaultSex
	if f.sex != "" {
		parsed, err := types.ParseSex(f.sex)
		if err != nil {
			return nil, fmt.Errorf("sex %q: %w", f.sex, err)
		}
		sex = parsed
	}

	var address types.Address
	if !f.address.empty() {
		a, err := f.address.build()
		if err != nil {
			return nil, err
		}
		address = a
	}

	name := types.NewName(f.forename, f.midname, f.surname)
	return types.NewPerson(name, sex, address, f.biography), nil
}

// parseName reads "Forename[,Midname[,Surname]]".
func parseName(s string) (types.Name, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return types.Name{}, fmt.Errorf("name %q has more than three parts: %w", s, errUsage)
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return types.NewName(parts[0], parts[1], parts[2]), nil
}

package types

import "strings"

// Name is a three-part personal name following the tria nomina convention:
// forename, middle name(s), and surname. No part is validated.
type Name struct {
	Forename string
	Midname  string
	Surname  string
}

// NewName returns a Name with the given parts.
func NewName(forename, midname, surname string) Name {
	return Name{Forename: forename, Midname: midname, Surname: surname}
}

// FullName joins the non-empty parts with single spaces.
func (n Name) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.Forename, n.Midname, n.Surname} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Equal reports whether all three parts match.
func (n Name) Equal(other Name) bool {
	return n == other
}

// Hash returns a digest that is equal for equal names.
func (n Name) Hash() uint64 {
	return newDigest("Name").str(n.Forename).str(n.Midname).str(n.Surname).sum()
}

func (n Name) String() string {
	return "Name{forename=" + n.Forename + ", midname=" + n.Midname + ", surname=" + n.Surname + "}"
}

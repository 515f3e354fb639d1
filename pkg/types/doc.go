// Package types defines the value objects and kinship entities of a family
// record: PostalCode, Address, Name, Sex, Person, and FamilyMember, together
// with the ChildSet container and the package's sentinel errors.
//
// Value objects (PostalCode, Address, Name) are plain Go values. Assigning
// one copies it, so a Person can never observe a later change made through
// the variable it was built from. Kinship links (mother, father, spouse,
// children) are references to other Relative nodes and are never copied.
package types

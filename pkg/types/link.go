package types

// Kinship roles, as reported by FamilyMember.Kin.
const (
	RoleMother = "mother"
	RoleFather = "father"
	RoleSpouse = "spouse"
	RoleChild  = "child"
)

// Link is a directed kinship edge from a FamilyMember to another Relative.
type Link struct {
	// Role is the relationship of Relative to the member (mother, father,
	// spouse, child).
	Role string

	// Relative is the linked node.
	Relative Relative
}

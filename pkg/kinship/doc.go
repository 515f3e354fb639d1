// Package kinship assigns stable identifiers to the nodes of a kinship graph
// and walks the graph without looping on cycles.
//
// The graph itself lives in the FamilyMember links of package types; a
// Registry only indexes it. Nothing here prevents a cycle such as a person
// being their own ancestor. HasCycle reports one so callers can apply their
// own policy.
package kinship

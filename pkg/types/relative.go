package types

import (
	"fmt"
	"strings"
)

// Relative is a node of a kinship graph: either a *Person or a
// *FamilyMember. Any Relative can be linked as a mother, father, spouse, or
// child.
type Relative interface {
	fmt.Stringer

	// Individual returns the identity fields of the node.
	Individual() *Person

	// Equal reports structural equality. A *Person is never equal to a
	// *FamilyMember.
	Equal(other Relative) bool

	// Hash returns a digest that is equal for equal relatives.
	Hash() uint64

	equalTo(other Relative, seen *comparing) bool
	writeTo(b *strings.Builder, path rendering)
}

// comparing holds the pairs of family members assumed equal during one
// comparison. A pair met again is assumed equal, which makes equality
// terminate on cyclic graphs. When an attempt fails, every pair recorded
// since it started is dropped.
type comparing struct {
	pairs map[[2]*FamilyMember]bool
	trail [][2]*FamilyMember
}

func newComparing() *comparing {
	return &comparing{pairs: make(map[[2]*FamilyMember]bool)}
}

func (c *comparing) assumed(key [2]*FamilyMember) bool {
	return c != nil && c.pairs[key]
}

// assume records key and returns the mark to roll back to.
func (c *comparing) assume(key [2]*FamilyMember) int {
	mark := len(c.trail)
	c.pairs[key] = true
	c.trail = append(c.trail, key)
	return mark
}

// rollback forgets every pair recorded after mark.
func (c *comparing) rollback(mark int) {
	for _, key := range c.trail[mark:] {
		delete(c.pairs, key)
	}
	c.trail = c.trail[:mark]
}

// rendering holds the family members on the current display path.
type rendering map[*FamilyMember]bool

// IsNil reports whether r is nil or holds a nil pointer.
func IsNil(r Relative) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *Person:
		return v == nil
	case *FamilyMember:
		return v == nil
	}
	return false
}

func relativesEqual(a, b Relative, seen *comparing) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.equalTo(b, seen)
}

func writeRelative(b *strings.Builder, r Relative, path rendering) {
	if IsNil(r) {
		b.WriteString("null")
		return
	}
	r.writeTo(b, path)
}

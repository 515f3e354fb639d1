package types

import "strings"

var _ Relative = (*FamilyMember)(nil)

// FamilyMember is a Person with a family name and links to other relatives.
// Links are references to nodes elsewhere in the graph; they are never
// copied, and setting a link on one member does not set the reverse link on
// the other.
type FamilyMember struct {
	Person

	familyName string
	mother     Relative
	father     Relative
	spouse     Relative
	children   *ChildSet
}

// NewFamilyMember builds a FamilyMember whose identity fields are copied from
// person. The links and the children set are stored as given; children is
// shared with the caller, not copied. A nil person leaves the identity fields
// empty.
func NewFamilyMember(person *Person, familyName string, mother, father, spouse Relative, children *ChildSet) *FamilyMember {
	m := &FamilyMember{
		familyName: familyName,
		mother:     mother,
		father:     father,
		spouse:     spouse,
		children:   children,
	}
	if person != nil {
		m.Person = *person.Clone()
	}
	return m
}

// Clone returns a FamilyMember with a fresh copy of the identity fields. The
// links and the children set are shared with m.
func (m *FamilyMember) Clone() *FamilyMember {
	cp := NewPerson(m.Name(), m.Sex(), m.Address(), m.Biography())
	return NewFamilyMember(cp, m.familyName, m.mother, m.father, m.spouse, m.children)
}

// Individual returns the embedded Person.
func (m *FamilyMember) Individual() *Person {
	return &m.Person
}

// FamilyName returns the family name.
func (m *FamilyMember) FamilyName() string {
	return m.familyName
}

// SetFamilyName replaces the family name.
func (m *FamilyMember) SetFamilyName(familyName string) {
	m.familyName = familyName
}

// Mother returns the linked mother, or nil.
func (m *FamilyMember) Mother() Relative {
	return m.mother
}

// SetMother links mother. Pass nil to clear the link.
func (m *FamilyMember) SetMother(mother Relative) {
	m.mother = mother
}

// Father returns the linked father, or nil.
func (m *FamilyMember) Father() Relative {
	return m.father
}

// SetFather links father. Pass nil to clear the link.
func (m *FamilyMember) SetFather(father Relative) {
	m.father = father
}

// Spouse returns the linked spouse, or nil.
func (m *FamilyMember) Spouse() Relative {
	return m.spouse
}

// SetSpouse links spouse. Pass nil to clear the link.
func (m *FamilyMember) SetSpouse(spouse Relative) {
	m.spouse = spouse
}

// Children returns the children set, which may be nil.
func (m *FamilyMember) Children() *ChildSet {
	return m.children
}

// SetChildren replaces the children set. The set is shared, not copied.
func (m *FamilyMember) SetChildren(children *ChildSet) {
	m.children = children
}

// GetChild returns the first child whose name equals name, or nil.
func (m *FamilyMember) GetChild(name Name) Relative {
	return m.children.Find(name)
}

// AddChild adds child to the children set and reports whether the set
// changed. Adding a child equal to an existing one returns false. A member
// without a children set gets one. Returns ErrNilArgument for a nil child and
// ErrUnsupportedOperation if the set is frozen.
func (m *FamilyMember) AddChild(child Relative) (bool, error) {
	if m.children == nil {
		if IsNil(child) {
			return false, ErrNilArgument
		}
		m.children = NewChildSet()
	}
	return m.children.Add(child)
}

// RemoveChild removes the first child whose name equals name and reports
// whether one was removed. A name matching no child is not an error. Returns
// ErrUnsupportedOperation if the set is frozen.
func (m *FamilyMember) RemoveChild(name Name) (bool, error) {
	if m.children.Frozen() {
		return false, ErrUnsupportedOperation
	}
	child := m.children.Find(name)
	if child == nil {
		return false, nil
	}
	return m.children.Remove(child)
}

// Kin lists the non-nil links in the order mother, father, spouse, children.
func (m *FamilyMember) Kin() []Link {
	var links []Link
	for _, l := range []Link{
		{Role: RoleMother, Relative: m.mother},
		{Role: RoleFather, Relative: m.father},
		{Role: RoleSpouse, Relative: m.spouse},
	} {
		if !IsNil(l.Relative) {
			links = append(links, l)
		}
	}
	for c := range m.children.All() {
		links = append(links, Link{Role: RoleChild, Relative: c})
	}
	return links
}

// Equal reports whether other is a *FamilyMember with equal identity fields,
// family name, mother, father, spouse, and children. Comparison terminates on
// cyclic graphs.
func (m *FamilyMember) Equal(other Relative) bool {
	return relativesEqual(m, other, nil)
}

func (m *FamilyMember) equalTo(other Relative, seen *comparing) bool {
	o, ok := other.(*FamilyMember)
	if !ok {
		return false
	}
	if m == o {
		return true
	}
	key := [2]*FamilyMember{m, o}
	if seen.assumed(key) {
		return true
	}
	if seen == nil {
		seen = newComparing()
	}
	mark := seen.assume(key)

	eq := m.Person.sameIdentity(&o.Person) &&
		m.familyName == o.familyName &&
		relativesEqual(m.mother, o.mother, seen) &&
		relativesEqual(m.father, o.father, seen) &&
		relativesEqual(m.spouse, o.spouse, seen) &&
		m.children.equalTo(o.children, seen)
	if !eq {
		seen.rollback(mark)
	}
	return eq
}

// Hash returns a digest over the identity fields and the family name. Links
// are left out so the digest is defined on cyclic graphs; equal members
// still hash equally.
func (m *FamilyMember) Hash() uint64 {
	return m.Person.digest("FamilyMember").str(m.familyName).sum()
}

func (m *FamilyMember) String() string {
	var b strings.Builder
	m.writeTo(&b, nil)
	return b.String()
}

func (m *FamilyMember) writeTo(b *strings.Builder, path rendering) {
	if path[m] {
		b.WriteString("FamilyMember{<cycle>}")
		return
	}
	if path == nil {
		path = make(rendering)
	}
	path[m] = true
	defer delete(path, m)

	b.WriteString("FamilyMember{")
	m.Person.writeTo(b, path)
	b.WriteString(", familyName=")
	b.WriteString(m.familyName)
	b.WriteString(", mother=")
	writeRelative(b, m.mother, path)
	b.WriteString(", father=")
	writeRelative(b, m.father, path)
	b.WriteString(", spouse=")
	writeRelative(b, m.spouse, path)
	b.WriteString(", children=")
	m.children.writeTo(b, path)
	b.WriteString("}")
}

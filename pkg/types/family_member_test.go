package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyMemberZeroValue(t *testing.T) {
	m := &FamilyMember{}

	assert.Equal(t, Name{}, m.Name())
	assert.Equal(t, Sex(""), m.Sex())
	assert.True(t, m.Address().IsZero())
	assert.Equal(t, "", m.Biography())
	assert.Equal(t, "", m.FamilyName())
	assert.Nil(t, m.Mother())
	assert.Nil(t, m.Father())
	assert.Nil(t, m.Spouse())
	assert.Nil(t, m.Children())
	assert.Empty(t, m.Kin())
}

func TestNewFamilyMember(t *testing.T) {
	name := NewName("", "", "")
	address := testAddress(t, 1)
	mother := NewPerson(name, SexFemale, address, "")
	father := NewPerson(name, SexMale, address, "")
	spouse := NewPerson(name, SexUnspecified, address, "")
	children := NewChildSet()
	person := NewPerson(name, SexUnspecified, address, "")

	m := NewFamilyMember(person, "Smith", mother, father, spouse, children)

	assert.Equal(t, name, m.Name())
	assert.Equal(t, SexUnspecified, m.Sex())
	assert.Equal(t, address, m.Address())
	assert.Equal(t, "Smith", m.FamilyName())
	assert.Same(t, mother, m.Mother())
	assert.Same(t, father, m.Father())
	assert.Same(t, spouse, m.Spouse())
	assert.Same(t, children, m.Children())

	person.SetBiography("changed later")
	assert.Equal(t, "", m.Biography(), "identity fields are copied from person")
}

func TestNewFamilyMemberNilPerson(t *testing.T) {
	m := NewFamilyMember(nil, "Smith", nil, nil, nil, nil)
	assert.Equal(t, Name{}, m.Name())
	assert.Equal(t, "Smith", m.FamilyName())
}

func TestFamilyMemberClone(t *testing.T) {
	mother := testPerson(t, "Mary")
	children := NewChildSet(testPerson(t, "Tom"))
	m := NewFamilyMember(testPerson(t, "Ann"), "Smith", mother, nil, nil, children)

	cp := m.Clone()

	assert.True(t, m.Equal(cp))
	assert.True(t, cp.Equal(m))
	assert.NotSame(t, m, cp)
	assert.Same(t, mother, cp.Mother(), "links are shared")
	assert.Same(t, children, cp.Children(), "children set is shared")

	cp.SetBiography("only on the clone")
	assert.Equal(t, "", m.Biography())
}

func TestFamilyMemberLinkSetters(t *testing.T) {
	m := &FamilyMember{}
	mother := testPerson(t, "Mary")
	father := testPerson(t, "John")
	spouse := NewFamilyMember(testPerson(t, "Sam"), "Jones", nil, nil, nil, nil)
	children := NewChildSet()

	m.SetFamilyName("Smith")
	m.SetMother(mother)
	m.SetFather(father)
	m.SetSpouse(spouse)
	m.SetChildren(children)

	assert.Equal(t, "Smith", m.FamilyName())
	assert.Same(t, mother, m.Mother())
	assert.Same(t, father, m.Father())
	assert.Same(t, spouse, m.Spouse())
	assert.Same(t, children, m.Children())
	assert.Nil(t, spouse.Spouse(), "links are not mirrored")

	m.SetMother(nil)
	assert.Nil(t, m.Mother())
}

func TestFamilyMemberChildLifecycle(t *testing.T) {
	m := NewFamilyMember(testPerson(t, "Ann"), "", nil, nil, nil, NewChildSet())
	p := testPerson(t, "Tom")

	added, err := m.AddChild(p)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Same(t, p, m.GetChild(p.Name()))

	removed, err := m.RemoveChild(p.Name())
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, m.GetChild(p.Name()))
}

func TestFamilyMemberAddChild(t *testing.T) {
	m := &FamilyMember{}
	p := testPerson(t, "Tom")

	added, err := m.AddChild(p)
	require.NoError(t, err)
	assert.True(t, added, "first add")
	require.NotNil(t, m.Children(), "set is allocated on first add")

	added, err = m.AddChild(p)
	require.NoError(t, err)
	assert.False(t, added, "same child again")

	added, err = m.AddChild(testPerson(t, "Tom"))
	require.NoError(t, err)
	assert.False(t, added, "equal child")

	twin := testPerson(t, "Tom")
	twin.SetBiography("the other Tom")
	added, err = m.AddChild(twin)
	require.NoError(t, err)
	assert.True(t, added, "same name but not equal")
	assert.Equal(t, 2, m.Children().Len())
	assert.Same(t, p, m.GetChild(p.Name()), "first match wins")
}

func TestFamilyMemberAddChildErrors(t *testing.T) {
	t.Run("nil child without set", func(t *testing.T) {
		m := &FamilyMember{}
		_, err := m.AddChild(nil)
		assert.ErrorIs(t, err, ErrNilArgument)
		assert.Nil(t, m.Children())
	})

	t.Run("nil child with set", func(t *testing.T) {
		m := NewFamilyMember(nil, "", nil, nil, nil, NewChildSet())
		var p *Person
		_, err := m.AddChild(p)
		assert.ErrorIs(t, err, ErrNilArgument)
		assert.Equal(t, 0, m.Children().Len())
	})

	t.Run("frozen set", func(t *testing.T) {
		children := NewChildSet()
		children.Freeze()
		m := NewFamilyMember(nil, "", nil, nil, nil, children)
		_, err := m.AddChild(testPerson(t, "Tom"))
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
		assert.Equal(t, 0, children.Len())
	})
}

func TestFamilyMemberRemoveChild(t *testing.T) {
	tom := testPerson(t, "Tom")
	twin := testPerson(t, "Tom")
	twin.SetBiography("second")
	sue := testPerson(t, "Sue")
	m := NewFamilyMember(nil, "", nil, nil, nil, NewChildSet(tom, twin, sue))

	removed, err := m.RemoveChild(NewName("Nobody", "", ""))
	require.NoError(t, err)
	assert.False(t, removed, "unknown name is not an error")

	removed, err = m.RemoveChild(tom.Name())
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Same(t, twin, m.GetChild(tom.Name()), "only the first match is removed")

	removed, err = m.RemoveChild(tom.Name())
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, m.GetChild(tom.Name()))
	assert.Equal(t, 1, m.Children().Len())
}

func TestFamilyMemberRemoveChildNoSet(t *testing.T) {
	m := &FamilyMember{}
	removed, err := m.RemoveChild(NewName("Tom", "", ""))
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Nil(t, m.GetChild(NewName("Tom", "", "")))
}

func TestFamilyMemberRemoveChildFrozen(t *testing.T) {
	tom := testPerson(t, "Tom")
	children := NewChildSet(tom)
	children.Freeze()
	m := NewFamilyMember(nil, "", nil, nil, nil, children)

	_, err := m.RemoveChild(tom.Name())
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Same(t, tom, m.GetChild(tom.Name()))
}

func TestFamilyMemberChildIsFamilyMember(t *testing.T) {
	parent := &FamilyMember{}
	child := NewFamilyMember(testPerson(t, "Tom"), "Smith", nil, parent, nil, nil)

	added, err := parent.AddChild(child)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Same(t, child, parent.GetChild(child.Name()))
}

func TestFamilyMemberEqual(t *testing.T) {
	build := func(familyName string, kids ...Relative) *FamilyMember {
		return NewFamilyMember(testPerson(t, "Ann"), familyName,
			testPerson(t, "Mary"), testPerson(t, "John"), nil, NewChildSet(kids...))
	}

	x := build("Smith", testPerson(t, "Tom"), testPerson(t, "Sue"))
	y := build("Smith", testPerson(t, "Sue"), testPerson(t, "Tom"))
	z := build("Smith", testPerson(t, "Tom"), testPerson(t, "Sue"))

	assert.True(t, x.Equal(x), "reflexive")
	assert.True(t, x.Equal(y) && y.Equal(x), "symmetric, children order ignored")
	assert.True(t, y.Equal(z) && x.Equal(z), "transitive")
	assert.Equal(t, x.Hash(), y.Hash())

	assert.False(t, x.Equal(build("Jones", testPerson(t, "Tom"), testPerson(t, "Sue"))), "family name")
	assert.False(t, x.Equal(build("Smith", testPerson(t, "Tom"))), "children")

	withSpouse := build("Smith", testPerson(t, "Tom"), testPerson(t, "Sue"))
	withSpouse.SetSpouse(testPerson(t, "Sam"))
	assert.False(t, x.Equal(withSpouse), "spouse")
	assert.False(t, withSpouse.Equal(x), "spouse")

	otherMother := build("Smith", testPerson(t, "Tom"), testPerson(t, "Sue"))
	otherMother.SetMother(testPerson(t, "Meg"))
	assert.False(t, x.Equal(otherMother), "mother")
}

func TestFamilyMemberEqualNilAndEmptyChildren(t *testing.T) {
	a := NewFamilyMember(testPerson(t, "Ann"), "", nil, nil, nil, nil)
	b := NewFamilyMember(testPerson(t, "Ann"), "", nil, nil, nil, NewChildSet())
	assert.True(t, a.Equal(b))
}

func TestFamilyMemberEqualCyclic(t *testing.T) {
	newCouple := func() *FamilyMember {
		a := NewFamilyMember(testPerson(t, "Ann"), "Smith", nil, nil, nil, nil)
		b := NewFamilyMember(testPerson(t, "Bob"), "Smith", nil, nil, nil, nil)
		a.SetSpouse(b)
		b.SetSpouse(a)
		return a
	}

	x, y := newCouple(), newCouple()
	assert.True(t, x.Equal(y))

	other := newCouple()
	other.Spouse().Individual().SetBiography("different")
	assert.False(t, x.Equal(other))
}

func TestFamilyMemberEqualDropsFailedAssumptions(t *testing.T) {
	// c1, c2, d1, d2 share identity and family name, so they land in the
	// same ChildSet bucket and differ only by their links.
	sibling := func() *FamilyMember {
		return NewFamilyMember(testPerson(t, "Kit"), "Smith", nil, nil, nil, nil)
	}
	spouse := func() *FamilyMember {
		return NewFamilyMember(testPerson(t, "Lee"), "Jones", nil, nil, nil, nil)
	}
	grandchild := testPerson(t, "Zed")

	c1, c2, d1, d2 := sibling(), sibling(), sibling(), sibling()
	x, y := spouse(), spouse()
	c1.SetSpouse(x)
	x.SetSpouse(c1)
	d1.SetSpouse(y)
	y.SetSpouse(d1)
	d2.SetSpouse(y)
	c2.SetSpouse(y)
	for _, m := range []*FamilyMember{d1, c2} {
		_, err := m.AddChild(grandchild)
		require.NoError(t, err)
	}

	require.False(t, c1.Equal(d1), "d1 has a child, c1 has none")
	require.False(t, c1.Equal(d2), "spouses link back to unequal members")

	pa := NewFamilyMember(testPerson(t, "Ann"), "Smith", nil, nil, nil, NewChildSet(c1, c2))
	pb := NewFamilyMember(testPerson(t, "Ann"), "Smith", nil, nil, nil, NewChildSet(d1, d2))
	require.Equal(t, 2, pa.Children().Len())
	require.Equal(t, 2, pb.Children().Len())

	assert.False(t, pa.Equal(pb), "c1 has no equal child under pb")
	assert.False(t, pb.Equal(pa))
}

func TestFamilyMemberSelfAncestor(t *testing.T) {
	m := NewFamilyMember(testPerson(t, "Ann"), "", nil, nil, nil, nil)
	m.SetMother(m)
	_, err := m.AddChild(m)
	require.NoError(t, err)

	assert.True(t, m.Equal(m.Clone()))
	assert.Contains(t, m.String(), "mother=FamilyMember{<cycle>}")
	assert.Contains(t, m.String(), "children=[FamilyMember{<cycle>}]")
}

func TestFamilyMemberString(t *testing.T) {
	child := testPerson(t, "Tom")
	m := NewFamilyMember(testPerson(t, "Ann"), "Smith", testPerson(t, "Mary"), nil, nil, NewChildSet(child))

	s := m.String()
	assert.True(t, strings.HasPrefix(s, "FamilyMember{Person{name=Name{forename=Ann, midname=, surname=Smith}"))
	assert.Contains(t, s, ", familyName=Smith, mother=Person{name=Name{forename=Mary,")
	assert.Contains(t, s, ", father=null, spouse=null, children=["+child.String()+"]}")

	assert.Equal(t, m.String(), m.Clone().String())
}

func TestFamilyMemberKin(t *testing.T) {
	mother := testPerson(t, "Mary")
	spouse := testPerson(t, "Sam")
	tom := testPerson(t, "Tom")
	m := NewFamilyMember(nil, "", mother, nil, spouse, NewChildSet(tom))

	kin := m.Kin()
	require.Len(t, kin, 3)
	assert.Equal(t, Link{Role: RoleMother, Relative: mother}, kin[0])
	assert.Equal(t, Link{Role: RoleSpouse, Relative: spouse}, kin[1])
	assert.Equal(t, Link{Role: RoleChild, Relative: tom}, kin[2])
}

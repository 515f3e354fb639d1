package types

import "strings"

var _ Relative = (*Person)(nil)

// Person holds the identity of an individual: name, sex, address, and a
// free-text biography. Name and Address are held by value, so the person
// never shares them with the caller.
type Person struct {
	name      Name
	sex       Sex
	address   Address
	biography string
}

// NewPerson builds a Person. No field is validated; Sex may be any value,
// including the empty one.
func NewPerson(name Name, sex Sex, address Address, biography string) *Person {
	return &Person{
		name:      name,
		sex:       sex,
		address:   address,
		biography: biography,
	}
}

// Clone returns an independent copy of p.
func (p *Person) Clone() *Person {
	cp := *p
	return &cp
}

// Individual returns p.
func (p *Person) Individual() *Person {
	return p
}

// Name returns the person's name.
func (p *Person) Name() Name {
	return p.name
}

// SetName replaces the person's name.
func (p *Person) SetName(name Name) {
	p.name = name
}

// Sex returns the recorded sex.
func (p *Person) Sex() Sex {
	return p.sex
}

// SetSex replaces the recorded sex.
func (p *Person) SetSex(sex Sex) {
	p.sex = sex
}

// Address returns the person's address.
func (p *Person) Address() Address {
	return p.address
}

// SetAddress replaces the person's address.
func (p *Person) SetAddress(address Address) {
	p.address = address
}

// Biography returns the biography text.
func (p *Person) Biography() string {
	return p.biography
}

// SetBiography replaces the biography text.
func (p *Person) SetBiography(biography string) {
	p.biography = biography
}

// Equal reports whether other is a *Person with the same four fields.
func (p *Person) Equal(other Relative) bool {
	return relativesEqual(p, other, nil)
}

func (p *Person) equalTo(other Relative, _ *comparing) bool {
	o, ok := other.(*Person)
	if !ok {
		return false
	}
	return p.sameIdentity(o)
}

func (p *Person) sameIdentity(o *Person) bool {
	if p == o {
		return true
	}
	return p.name.Equal(o.name) &&
		p.sex == o.sex &&
		p.address.Equal(o.address) &&
		p.biography == o.biography
}

// Hash returns a digest over the four identity fields.
func (p *Person) Hash() uint64 {
	return p.digest("Person").sum()
}

func (p *Person) digest(kind string) digest {
	return newDigest(kind).
		u64(p.name.Hash()).
		str(string(p.sex)).
		u64(p.address.Hash()).
		str(p.biography)
}

func (p *Person) String() string {
	var b strings.Builder
	p.writeTo(&b, nil)
	return b.String()
}

func (p *Person) writeTo(b *strings.Builder, _ rendering) {
	b.WriteString("Person{name=")
	b.WriteString(p.name.String())
	b.WriteString(", sex=")
	if p.sex == "" {
		b.WriteString("null")
	} else {
		b.WriteString(string(p.sex))
	}
	b.WriteString(", address=")
	if p.address.IsZero() {
		b.WriteString("null")
	} else {
		b.WriteString(p.address.String())
	}
	b.WriteString(", biography=")
	b.WriteString(p.biography)
	b.WriteString("}")
}

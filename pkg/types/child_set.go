package types

import (
	"iter"
	"slices"
	"strings"
)

// ChildSet is a set of Relatives keyed by structural equality. Members are
// bucketed by Hash and iterated in insertion order. Several members may share
// the same Name; Find returns the first one added.
//
// A member must not be changed in a way that alters its equality while it is
// in the set. Remove still locates such a member by identity.
//
// Read methods accept a nil *ChildSet and treat it as empty.
type ChildSet struct {
	order   []Relative
	buckets map[uint64][]Relative
	frozen  bool
}

// NewChildSet returns a set holding the given children. Nil entries and
// duplicates are skipped.
func NewChildSet(children ...Relative) *ChildSet {
	s := &ChildSet{buckets: make(map[uint64][]Relative)}
	for _, c := range children {
		_, _ = s.Add(c)
	}
	return s
}

// Add inserts child unless an equal member is already present. It reports
// whether the set changed. Returns ErrNilArgument for a nil child and
// ErrUnsupportedOperation if the set is frozen.
func (s *ChildSet) Add(child Relative) (bool, error) {
	if s.frozen {
		return false, ErrUnsupportedOperation
	}
	if IsNil(child) {
		return false, ErrNilArgument
	}
	if s.contains(child, nil) {
		return false, nil
	}
	if s.buckets == nil {
		s.buckets = make(map[uint64][]Relative)
	}
	h := child.Hash()
	s.buckets[h] = append(s.buckets[h], child)
	s.order = append(s.order, child)
	return true, nil
}

// Remove deletes the member that is child itself or, failing that, equal to
// it. It reports whether a member was removed. Returns
// ErrUnsupportedOperation if the set is frozen.
func (s *ChildSet) Remove(child Relative) (bool, error) {
	if s.frozen {
		return false, ErrUnsupportedOperation
	}
	if IsNil(child) {
		return false, nil
	}
	i := slices.IndexFunc(s.order, func(c Relative) bool { return c == child })
	if i < 0 {
		i = slices.IndexFunc(s.order, func(c Relative) bool { return relativesEqual(c, child, nil) })
	}
	if i < 0 {
		return false, nil
	}
	s.removeAt(i)
	return true, nil
}

func (s *ChildSet) removeAt(i int) {
	member := s.order[i]
	s.order = slices.Delete(s.order, i, i+1)

	h := member.Hash()
	if s.dropFromBucket(h, member) {
		return
	}
	// The member changed since it was added; its bucket is keyed by the old hash.
	for k := range s.buckets {
		if s.dropFromBucket(k, member) {
			return
		}
	}
}

func (s *ChildSet) dropFromBucket(h uint64, member Relative) bool {
	bucket := s.buckets[h]
	j := slices.IndexFunc(bucket, func(c Relative) bool { return c == member })
	if j < 0 {
		return false
	}
	bucket = slices.Delete(bucket, j, j+1)
	if len(bucket) == 0 {
		delete(s.buckets, h)
	} else {
		s.buckets[h] = bucket
	}
	return true
}

// Contains reports whether a member equal to child is present.
func (s *ChildSet) Contains(child Relative) bool {
	if s == nil || IsNil(child) {
		return false
	}
	return s.contains(child, nil)
}

func (s *ChildSet) contains(child Relative, seen *comparing) bool {
	for _, c := range s.buckets[child.Hash()] {
		if relativesEqual(c, child, seen) {
			return true
		}
	}
	return false
}

// Find returns the first member, in insertion order, whose name equals name.
// Returns nil if there is none.
func (s *ChildSet) Find(name Name) Relative {
	if s == nil {
		return nil
	}
	for _, c := range s.order {
		if c.Individual().Name().Equal(name) {
			return c
		}
	}
	return nil
}

// Len returns the number of members.
func (s *ChildSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// All iterates over the members in insertion order.
func (s *ChildSet) All() iter.Seq[Relative] {
	return func(yield func(Relative) bool) {
		if s == nil {
			return
		}
		for _, c := range s.order {
			if !yield(c) {
				return
			}
		}
	}
}

// Slice returns the members in insertion order.
func (s *ChildSet) Slice() []Relative {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// Freeze makes the set read-only. Later Add and Remove calls fail with
// ErrUnsupportedOperation.
func (s *ChildSet) Freeze() {
	s.frozen = true
}

// Frozen reports whether the set is read-only.
func (s *ChildSet) Frozen() bool {
	return s != nil && s.frozen
}

// Clone returns a writable set with the same members. The members themselves
// are not copied.
func (s *ChildSet) Clone() *ChildSet {
	cp := NewChildSet()
	if s == nil {
		return cp
	}
	cp.order = slices.Clone(s.order)
	for h, bucket := range s.buckets {
		cp.buckets[h] = slices.Clone(bucket)
	}
	return cp
}

// Equal reports whether both sets hold equal members, regardless of order.
// A nil set equals an empty one.
func (s *ChildSet) Equal(other *ChildSet) bool {
	return s.equalTo(other, nil)
}

func (s *ChildSet) equalTo(other *ChildSet, seen *comparing) bool {
	if s == other {
		return true
	}
	if s.Len() != other.Len() {
		return false
	}
	for c := range s.All() {
		if !other.contains(c, seen) {
			return false
		}
	}
	return true
}

func (s *ChildSet) String() string {
	var b strings.Builder
	s.writeTo(&b, nil)
	return b.String()
}

func (s *ChildSet) writeTo(b *strings.Builder, path rendering) {
	b.WriteString("[")
	i := 0
	for c := range s.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		c.writeTo(b, path)
		i++
	}
	b.WriteString("]")
}

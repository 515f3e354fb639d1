package kinship

import (
	"fmt"

	"github.com/mesh-intelligence/familytree/pkg/types"
)

// step selects the neighbours followed by a traversal.
type step func(types.Relative) []types.Relative

func parentsOf(node types.Relative) []types.Relative {
	m, ok := node.(*types.FamilyMember)
	if !ok {
		return nil
	}
	return nonNil(m.Mother(), m.Father())
}

func childrenOf(node types.Relative) []types.Relative {
	m, ok := node.(*types.FamilyMember)
	if !ok {
		return nil
	}
	return m.Children().Slice()
}

func allLinks(node types.Relative) []types.Relative {
	m, ok := node.(*types.FamilyMember)
	if !ok {
		return nil
	}
	out := nonNil(m.Mother(), m.Father(), m.Spouse())
	return append(out, m.Children().Slice()...)
}

func nonNil(rs ...types.Relative) []types.Relative {
	out := make([]types.Relative, 0, len(rs))
	for _, r := range rs {
		if !types.IsNil(r) {
			out = append(out, r)
		}
	}
	return out
}

// walk visits nodes reachable from start breadth-first, each at most once,
// and returns their IDs in visiting order, excluding start. Nodes met for the
// first time are registered.
func (r *Registry) walk(start ID, next step) []ID {
	visited := map[ID]bool{start: true}
	queue := []ID{start}
	var out []ID
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range next(r.nodes[id]) {
			nid := r.add(n)
			if visited[nid] {
				continue
			}
			visited[nid] = true
			out = append(out, nid)
			queue = append(queue, nid)
		}
	}
	return out
}

func (r *Registry) neighbours(id ID, next step) ([]ID, error) {
	node, ok := r.nodes[id]
	if !ok {
		return nil, fmt.Errorf("neighbours of %s: %w", id, ErrUnknownID)
	}
	var out []ID
	for _, n := range next(node) {
		out = append(out, r.add(n))
	}
	return out, nil
}

// Parents returns the IDs of the mother and father of id, when linked.
func (r *Registry) Parents(id ID) ([]ID, error) {
	return r.neighbours(id, parentsOf)
}

// Children returns the IDs of the children of id in insertion order.
func (r *Registry) Children(id ID) ([]ID, error) {
	return r.neighbours(id, childrenOf)
}

// Spouse returns the ID of the spouse of id. The boolean is false when no
// spouse is linked.
func (r *Registry) Spouse(id ID) (ID, bool, error) {
	node, ok := r.nodes[id]
	if !ok {
		return "", false, fmt.Errorf("spouse of %s: %w", id, ErrUnknownID)
	}
	m, ok := node.(*types.FamilyMember)
	if !ok || types.IsNil(m.Spouse()) {
		return "", false, nil
	}
	return r.add(m.Spouse()), true, nil
}

// Ancestors returns every node reachable from id through mother and father
// links, nearest generation first. On a cyclic graph id itself is left out.
func (r *Registry) Ancestors(id ID) ([]ID, error) {
	if _, ok := r.nodes[id]; !ok {
		return nil, fmt.Errorf("ancestors of %s: %w", id, ErrUnknownID)
	}
	return r.walk(id, parentsOf), nil
}

// Descendants returns every node reachable from id through children links,
// nearest generation first.
func (r *Registry) Descendants(id ID) ([]ID, error) {
	if _, ok := r.nodes[id]; !ok {
		return nil, fmt.Errorf("descendants of %s: %w", id, ErrUnknownID)
	}
	return r.walk(id, childrenOf), nil
}

// Siblings returns the other children of the parents of id, without
// duplicates, in the order they are found.
func (r *Registry) Siblings(id ID) ([]ID, error) {
	parents, err := r.Parents(id)
	if err != nil {
		return nil, err
	}
	seen := map[ID]bool{id: true}
	var out []ID
	for _, p := range parents {
		for _, kid := range childrenOf(r.nodes[p]) {
			k := r.add(kid)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// HasCycle reports whether id is its own ancestor.
func (r *Registry) HasCycle(id ID) (bool, error) {
	if _, ok := r.nodes[id]; !ok {
		return false, fmt.Errorf("cycle check of %s: %w", id, ErrUnknownID)
	}
	for _, n := range append([]ID{id}, r.walk(id, parentsOf)...) {
		for _, p := range parentsOf(r.nodes[n]) {
			if r.ids[p] == id {
				return true, nil
			}
		}
	}
	return false, nil
}

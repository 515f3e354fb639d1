package kinship

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/familytree/pkg/types"
)

// ErrUnknownID is returned when an ID was never issued by the registry.
var ErrUnknownID = errors.New("unknown relative ID")

// ID identifies a node within one Registry. IDs are UUID v7 strings.
type ID string

// Registry maps IDs to kinship nodes. Nodes are keyed by identity, so two
// structurally equal people added separately get separate IDs. A Registry is
// not safe for concurrent use.
type Registry struct {
	nodes map[ID]types.Relative
	ids   map[types.Relative]ID
	order []ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[ID]types.Relative),
		ids:   make(map[types.Relative]ID),
	}
}

// generateID returns a new UUID v7, falling back to v4.
func generateID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		return ID(uuid.New().String())
	}
	return ID(id.String())
}

// Add registers node and returns its ID. Adding a node that is already
// registered returns its existing ID. Returns types.ErrNilArgument for a nil
// node.
func (r *Registry) Add(node types.Relative) (ID, error) {
	if types.IsNil(node) {
		return "", types.ErrNilArgument
	}
	return r.add(node), nil
}

func (r *Registry) add(node types.Relative) ID {
	if id, ok := r.ids[node]; ok {
		return id
	}
	id := generateID()
	r.nodes[id] = node
	r.ids[node] = id
	r.order = append(r.order, id)
	return id
}

// AddGraph registers root and every node reachable from it through kinship
// links. It returns the root's ID.
func (r *Registry) AddGraph(root types.Relative) (ID, error) {
	id, err := r.Add(root)
	if err != nil {
		return "", err
	}
	r.walk(id, allLinks)
	return id, nil
}

// Get returns the node registered under id.
func (r *Registry) Get(id ID) (types.Relative, error) {
	node, ok := r.nodes[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrUnknownID)
	}
	return node, nil
}

// IDOf returns the ID of a registered node.
func (r *Registry) IDOf(node types.Relative) (ID, bool) {
	id, ok := r.ids[node]
	return id, ok
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.order)
}

// IDs returns every ID in registration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// FindByName returns, in registration order, the IDs of nodes whose name
// equals name.
func (r *Registry) FindByName(name types.Name) []ID {
	var out []ID
	for _, id := range r.order {
		if r.nodes[id].Individual().Name().Equal(name) {
			out = append(out, id)
		}
	}
	return out
}

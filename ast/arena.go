package ast

// NodeID indexes a Node within an Arena. Index 0 is a valid NodeID (the
// first node allocated), so the zero value does not mean "no node". Callers
// that need an explicit "absent child" marker use a pointer-to-NodeID or a
// sentinel field, not NodeID itself.
type NodeID int

// Node is one flat record in an Arena: a syntax-tree node identified only by
// its Kind, its span over the source, an integer attribute slot and an
// optional declared Name, per spec.md §3.2's
// index-overlay design. Node carries no child/parent pointers -- structure is
// recovered from allocation order (strict post-order: every child is
// allocated before its parent) plus span containment.
type Node struct {
	Kind      Kind
	Start     int // inclusive, UTF-16 code-unit offset into the Source
	End       int // exclusive
	Attribute int    // kind-specific payload; see doc comments on the producing parser function
	Name      string // the declared name, for identifier-bearing declaration nodes (spec.md §3.2/§6); empty otherwise
}

// Arena is an append-only store of Nodes, built in strict post-order during a
// single parse. An Arena is never mutated after the parse that built it
// completes, and is never shared for concurrent writes (spec.md §5: one
// Arena per Parser instance, one Parser instance per goroutine).
type Arena struct {
	nodes []Node
}

// NewArena returns an empty Arena. cap is a size hint (e.g. an estimate from
// source length) to cut down on reallocation; 0 is a valid, ordinary hint.
func NewArena(cap int) *Arena {
	return &Arena{nodes: make([]Node, 0, cap)}
}

// Allocate appends a new Node and returns its NodeID. Per the post-order
// invariant, callers must allocate all of a node's children before calling
// Allocate for the node itself.
func (a *Arena) Allocate(kind Kind, start, end int) NodeID {
	return a.AllocateWithAttribute(kind, start, end, 0)
}

// AllocateWithAttribute is Allocate plus an explicit attribute payload, for
// node kinds that need one (e.g. a LITERAL's token kind, a
// BINARY_EXPRESSION's or UNARY_EXPRESSION's operator).
func (a *Arena) AllocateWithAttribute(kind Kind, start, end, attribute int) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{Kind: kind, Start: start, End: end, Attribute: attribute})
	return id
}

// AllocateWithName is Allocate plus the declared name of an
// identifier-bearing declaration (a type declaration or a parameter), per
// spec.md §3.2's TypeDeclarationAttribute/ParameterAttribute payloads.
func (a *Arena) AllocateWithName(kind Kind, start, end int, name string) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{Kind: kind, Start: start, End: end, Name: name})
	return id
}

// Get returns the Node at id. It panics on an out-of-range id; every NodeID
// in circulation was handed out by this same Arena's Allocate.
func (a *Arena) Get(id NodeID) Node {
	return a.nodes[id]
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Truncate discards every node allocated at or after index n, restoring the
// Arena to the state it was in when Len() last returned n. The parser uses
// this to undo a speculative parse attempt's allocations on backtrack,
// alongside resetting its token Stream to the matching Mark.
func (a *Arena) Truncate(n int) {
	a.nodes = a.nodes[:n]
}

// Root returns the last-allocated node's id: under the strict post-order
// invariant, the outermost (COMPILATION_UNIT) node is always allocated last.
func (a *Arena) Root() NodeID {
	return NodeID(len(a.nodes) - 1)
}

// Children returns the ids of id's direct children, found by scanning
// backward from id-1 and collecting nodes whose span is contained in id's
// span, skipping over any node's own nested descendants (since a
// descendant's span is a subset of its parent's, and the parent was
// allocated strictly before id).
func (a *Arena) Children(id NodeID) []NodeID {
	parent := a.Get(id)
	var children []NodeID
	i := int(id) - 1
	for i >= 0 {
		n := a.nodes[i]
		if n.Start < parent.Start || n.End > parent.End {
			break
		}
		children = append(children, NodeID(i))
		i -= subtreeSize(a, NodeID(i))
	}
	reverse(children)
	return children
}

// subtreeSize returns how many contiguous preceding array slots belong to
// id's own subtree (including id itself), computed by walking backward while
// spans stay nested inside id's span.
func subtreeSize(a *Arena, id NodeID) int {
	n := a.Get(id)
	count := 1
	i := int(id) - 1
	for i >= 0 {
		c := a.nodes[i]
		if c.Start < n.Start || c.End > n.End {
			break
		}
		skip := subtreeSize(a, NodeID(i))
		count += skip
		i -= skip
	}
	return count
}

func reverse(ids []NodeID) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// Equal reports whether two Arenas describe structurally identical trees
// (same sequence of Kind/Start/End/Attribute/Name records). Used by tests that
// compare a parse result against an expected fixture tree.
func Equal(a, b *Arena) bool {
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i] != b.nodes[i] {
			return false
		}
	}
	return true
}

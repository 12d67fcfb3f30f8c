// Copyright (c) 2024
//
// MIT License

package ddnnf

// noID is the sentinel used throughout this package for "no such node",
// matching the teacher's own convention of using -1 as an absent-node
// marker (see dalzilio-rudd/kernel.go and hkernel.go's use of -1 for
// b.freepos/low/high sentinels) and the original C++ implementation's
// root_id/true_node_id/false_node_id initialized to -1.
const noID = -1

// Graph is the owning container for a d-DNNF: a dense-after-simplification,
// id-addressed table of nodes plus the bookkeeping described in §3 of the
// specification (root/true/false ids, the literal index, the mentioned-
// variable set, and the declared variable upper bound).
type Graph struct {
	nodes         []*node
	rootID        int
	trueID        int
	falseID       int
	literals      map[int]int // signed literal -> node id, absent means noID
	mentionedVars map[int]struct{}
	totalVars     int
}

// NewGraph returns an empty graph store, ready for Reset-free use by a
// reader or by direct construction via AddNode/AddEdge.
func NewGraph() *Graph {
	g := &Graph{}
	g.Reset()
	return g
}

// Reset empties all state, exactly as DDNNF::reset does in the original.
func (g *Graph) Reset() {
	g.nodes = nil
	g.literals = make(map[int]int)
	g.mentionedVars = make(map[int]struct{})
	g.rootID = noID
	g.trueID = noID
	g.falseID = noID
	g.totalVars = 0
}

// NodeCount returns the number of node slots currently in the table,
// including any that have been nulled out by a pending deletion but not yet
// swept (callers outside this package only ever observe a post-Simplify
// graph, where every slot is live).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the sum of child-set sizes over all live nodes.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		total += len(n.children)
	}
	return total
}

// TotalVariables returns the declared variable upper bound.
func (g *Graph) TotalVariables() int { return g.totalVars }

// RootID returns the id of the root node, or noID if the graph is empty.
func (g *Graph) RootID() int { return g.rootID }

// MentionedVars returns a sorted copy of the absolute variable indices that
// currently appear in some reachable LITERAL node.
func (g *Graph) MentionedVars() []int {
	return sortedKeys(g.mentionedVars)
}

// IsRoot reports whether id names the current root.
func (g *Graph) IsRoot(id int) bool {
	return id == g.rootID
}

// getNode returns the node with the given id, or nil if id is out of range
// or the slot has been deleted.
func (g *Graph) getNode(id int) *node {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// GetLiteralID returns the id of the LITERAL node for the signed literal v,
// or noID if no such node currently exists.
func (g *Graph) GetLiteralID(v int) int {
	id, ok := g.literals[v]
	if !ok {
		return noID
	}
	return id
}

// PrepareLiterals ensures the literals map has sentinel entries for every
// signed literal in ±[1, n], growing totalVars to at least n.
func (g *Graph) PrepareLiterals(n int) {
	for i := 1; i <= n; i++ {
		if _, ok := g.literals[i]; !ok {
			g.literals[i] = noID
		}
		if _, ok := g.literals[-i]; !ok {
			g.literals[-i] = noID
		}
	}
	if n > g.totalVars {
		g.totalVars = n
	}
}

// AddNode appends a new node of the given kind and returns its id. It
// enforces the at-most-one-TRUE, at-most-one-FALSE, and at-most-one-LITERAL-
// per-signed-variable invariants (§4.B), returning an error instead of the
// original's exit(1) when one of them would be violated.
func (g *Graph) AddNode(kind Kind, lit int) (int, error) {
	id := len(g.nodes)
	switch kind {
	case KindTrue:
		if g.trueID != noID {
			return noID, newInternalError("graph already has a TRUE node (%d)", g.trueID)
		}
		g.trueID = id
	case KindFalse:
		if g.falseID != noID {
			return noID, newInternalError("graph already has a FALSE node (%d)", g.falseID)
		}
		g.falseID = id
	case KindLiteral:
		existing, ok := g.literals[lit]
		if !ok {
			return noID, newInternalError("literal %d outside the declared variable range", lit)
		}
		if existing != noID {
			return noID, newInternalError("graph already has a LITERAL node for %d (%d)", lit, existing)
		}
		g.literals[lit] = id
		g.mentionedVars[abs(lit)] = struct{}{}
	}
	if kind != KindLiteral {
		lit = 0
	}
	n := newNode(id, kind, lit)
	g.nodes = append(g.nodes, n)
	return id, nil
}

// AddEdge inserts childID into parentID's child set, and parentID into
// childID's parent set. Duplicate edges are silently absorbed by the
// underlying sets. Out-of-range ids, and a parent that is a LITERAL, TRUE or
// FALSE leaf, are an InternalError.
func (g *Graph) AddEdge(parentID, childID int) error {
	p := g.getNode(parentID)
	c := g.getNode(childID)
	if p == nil || c == nil {
		return newInternalError("add edge: invalid node id (parent=%d, child=%d)", parentID, childID)
	}
	if !p.canHaveChildren() {
		return newInternalError("add edge: %s node %d cannot have children", p.kind, parentID)
	}
	p.addChild(childID)
	c.addParent(parentID)
	return nil
}

// removeEdge is the converse-preserving inverse of AddEdge, used by the
// simplifier and conditioner for rewiring.
func (g *Graph) removeEdge(parentID, childID int) {
	if p := g.getNode(parentID); p != nil {
		p.removeChild(childID)
	}
	if c := g.getNode(childID); c != nil {
		c.removeParent(parentID)
	}
}

// deleteNode detaches n from every surviving relation and nulls its slot.
// It does not touch the literal/true/false indices; callers update those
// themselves, since the right update differs between the simplifier's three
// phases and the conditioner's literal-replacement step.
func (g *Graph) deleteNode(id int) {
	n := g.getNode(id)
	if n == nil {
		return
	}
	for child := range n.children {
		g.removeEdge(id, child)
	}
	for parent := range n.parents {
		g.removeEdge(parent, id)
	}
	g.nodes[id] = nil
}

// NodeView is a read-only snapshot of one node, exposed for inspection code
// (debugging dumps, tests) that must not retain it across any mutation: ids
// are not stable across a Simplify call (§5).
type NodeView struct {
	ID       int
	Kind     Kind
	Lit      int // only meaningful when Kind == KindLiteral
	Children []int
	Parents  []int
}

// GetNode returns a snapshot of the node with the given id, or false if id
// is out of range or the slot has been deleted.
func (g *Graph) GetNode(id int) (NodeView, bool) {
	n := g.getNode(id)
	if n == nil {
		return NodeView{}, false
	}
	return NodeView{
		ID:       n.id,
		Kind:     n.kind,
		Lit:      n.lit,
		Children: n.childSlice(),
		Parents:  n.parentSlice(),
	}, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

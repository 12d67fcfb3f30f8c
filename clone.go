// Copyright (c) 2024
//
// MIT License

package ddnnf

// Clone returns a deep copy of g: a new node slice, new child/parent sets
// on every node, and a new literal index, sharing no mutable state with
// the original. Used internally by the "c2d" writer (§4.G) and exported
// for callers that want to branch several alternative conditioning
// assumptions off the same unmutated baseline, the same role the original
// tool's clone()/clone_ptr() pair served.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		nodes:         make([]*node, len(g.nodes)),
		literals:      make(map[int]int, len(g.literals)),
		mentionedVars: make(map[int]struct{}, len(g.mentionedVars)),
		rootID:        g.rootID,
		trueID:        g.trueID,
		falseID:       g.falseID,
		totalVars:     g.totalVars,
	}
	for id, n := range g.nodes {
		if n == nil {
			continue
		}
		cp := &node{
			id:       n.id,
			kind:     n.kind,
			lit:      n.lit,
			children: make(map[int]struct{}, len(n.children)),
			parents:  make(map[int]struct{}, len(n.parents)),
		}
		for c := range n.children {
			cp.children[c] = struct{}{}
		}
		for p := range n.parents {
			cp.parents[p] = struct{}{}
		}
		out.nodes[id] = cp
	}
	for lit, id := range g.literals {
		out.literals[lit] = id
	}
	for v := range g.mentionedVars {
		out.mentionedVars[v] = struct{}{}
	}
	return out
}

// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"bufio"
	"os"
)

// WriteC2D writes g in the stricter "c2d" dialect, which only tolerates OR
// gates of fanout exactly two (§4.G). The original graph is never mutated:
// a clone is rebalanced, then emitted with the same node-line grammar the
// "ddnnf" writer uses.
func WriteC2D(g *Graph, path string) error {
	clone := g.Clone()
	if err := clone.balanceORs(); err != nil {
		return err
	}
	// Only the bookkeeping passes run here, not a full Simplify: phase 1's
	// same-kind-child absorption would immediately undo the OR-of-OR
	// structure balanceORs just built on purpose.
	clone.removeUnreachable()
	if err := clone.reindex(); err != nil {
		return err
	}
	clone.recomputeMentionedVars()

	f, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := writeNNF(w, clone); err != nil {
		return err
	}
	return w.Flush()
}

// balanceORs rewrites every OR node with more than two children into a
// balanced binary tree of freshly created OR gates, one node at a time,
// mirroring the original tool's make_c2d_rec queue-pairing rebalance.
func (g *Graph) balanceORs() error {
	var orIDs []int
	for id := 0; id < g.NodeCount(); id++ {
		if n := g.getNode(id); n != nil && n.kind == KindOr {
			orIDs = append(orIDs, id)
		}
	}
	for _, id := range orIDs {
		if err := g.balanceOR(id); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) balanceOR(id int) error {
	n := g.getNode(id)
	queue := n.childSlice()
	if len(queue) <= 2 {
		return nil
	}
	for _, c := range queue {
		g.removeEdge(id, c)
	}
	for len(queue) > 2 {
		a, b := queue[0], queue[1]
		queue = queue[2:]
		pairID, err := g.AddNode(KindOr, 0)
		if err != nil {
			return err
		}
		if err := g.AddEdge(pairID, a); err != nil {
			return err
		}
		if err := g.AddEdge(pairID, b); err != nil {
			return err
		}
		queue = append(queue, pairID)
	}
	for _, c := range queue {
		if err := g.AddEdge(id, c); err != nil {
			return err
		}
	}
	return nil
}

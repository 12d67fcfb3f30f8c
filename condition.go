// Copyright (c) 2024
//
// MIT License

package ddnnf

import "sort"

// Condition specializes the graph under the single literal v (§4.E):
// every existing occurrence of v is replaced by TRUE and every occurrence
// of -v by FALSE, then a fresh literal node for v is conjoined with the
// current root and the whole graph is re-simplified. The fresh literal is
// deliberately left in the graph rather than folded away inline: it is
// what makes re-conditioning on v a no-op (property 9) and what lets a
// later Condition(-v) detect the conflict and collapse the root to FALSE
// (property 10), the same way the original's two substitution passes
// (one per polarity) interact across separate calls.
func (g *Graph) Condition(v int) error {
	if v == 0 {
		return newUsageError("cannot condition on literal 0")
	}
	av := abs(v)
	if _, ok := g.literals[av]; !ok {
		return newUsageError("variable %d is outside the declared variable range", av)
	}
	if err := g.ensureConstants(); err != nil {
		return err
	}

	if id := g.GetLiteralID(v); id != noID {
		if err := g.substituteConstant(id, g.trueID); err != nil {
			return err
		}
	}
	if id := g.GetLiteralID(-v); id != noID {
		if err := g.substituteConstant(id, g.falseID); err != nil {
			return err
		}
	}

	newLit, err := g.AddNode(KindLiteral, v)
	if err != nil {
		return err
	}
	andID, err := g.AddNode(KindAnd, 0)
	if err != nil {
		return err
	}
	if err := g.AddEdge(andID, newLit); err != nil {
		return err
	}
	if err := g.AddEdge(andID, g.rootID); err != nil {
		return err
	}
	g.rootID = andID

	debugf("condition: fixed variable %d, resimplifying", av)
	return g.Simplify()
}

// ConditionAll specializes the graph under an assignment to several
// variables at once. The input set itself must not assert both polarities
// of the same variable (§4.E's precondition, `UsageError`); once validated,
// each variable is applied with its own call to Condition, in ascending
// order of magnitude so repeated calls with the same set are byte-for-byte
// reproducible (conditioning on disjoint variables commutes — property 8 —
// so the exact order has no effect on the result, only on determinism).
func (g *Graph) ConditionAll(vars []int) error {
	if len(vars) == 0 {
		return nil
	}
	assign := make(map[int]int, len(vars))
	for _, v := range vars {
		if v == 0 {
			return newUsageError("cannot condition on literal 0")
		}
		av := abs(v)
		sign := 1
		if v < 0 {
			sign = -1
		}
		if existing, ok := assign[av]; ok {
			if existing != sign {
				return newUsageError("cannot condition on both a variable and its negation (%d)", av)
			}
			continue
		}
		assign[av] = sign
	}

	order := make([]int, 0, len(assign))
	for av := range assign {
		order = append(order, av)
	}
	sort.Ints(order)

	for _, av := range order {
		if err := g.Condition(av * assign[av]); err != nil {
			return err
		}
	}
	return nil
}

// substituteConstant redirects every parent of litID to target and removes
// litID, mirroring the collapse step in simplify.go but keyed off an
// assignment rather than a propagated constant.
func (g *Graph) substituteConstant(litID, target int) error {
	n := g.getNode(litID)
	if n == nil {
		return nil
	}
	for _, p := range n.parentSlice() {
		g.removeEdge(p, litID)
		if err := g.AddEdge(p, target); err != nil {
			return err
		}
	}
	if g.rootID == litID {
		g.rootID = target
	}
	if g.literals[n.lit] == litID {
		g.literals[n.lit] = noID
	}
	g.nodes[litID] = nil
	return nil
}

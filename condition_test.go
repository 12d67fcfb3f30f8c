// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildOr returns OR(lit(1), lit(2)) as a 3-variable graph (variable 3 is
// declared but unused, so literal-range checks have something to reject).
func buildOr(t *testing.T) *Graph {
	g := NewGraph()
	g.PrepareLiterals(3)
	l1, err := g.AddNode(KindLiteral, 1)
	require.NoError(t, err)
	l2, err := g.AddNode(KindLiteral, 2)
	require.NoError(t, err)
	or, err := g.AddNode(KindOr, 0)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(or, l1))
	require.NoError(t, g.AddEdge(or, l2))
	g.rootID = or
	return g
}

func TestConditionOnSingleLiteralLeavesTheFixedLiteralAsRoot(t *testing.T) {
	g := buildOr(t)

	require.NoError(t, g.Condition(1))

	view, ok := g.GetNode(g.RootID())
	require.True(t, ok)
	// OR(1,2)|v=1 collapses the OR to TRUE, and AND(fresh-lit(1), TRUE)
	// then splices down to the fresh literal alone: the result is not a
	// bare TRUE, it is LITERAL(1), exactly as scenario S2 describes.
	require.Equal(t, KindLiteral, view.Kind)
	require.Equal(t, 1, view.Lit)
}

func TestConditionRejectsVariableOutsideRange(t *testing.T) {
	g := buildOr(t)

	err := g.Condition(99)
	require.Error(t, err)
	require.IsType(t, &UsageError{}, err)
}

func TestConditionRejectsZero(t *testing.T) {
	g := buildOr(t)

	err := g.Condition(0)
	require.Error(t, err)
	require.IsType(t, &UsageError{}, err)
}

func TestConditionAllRejectsContradictorySet(t *testing.T) {
	g := buildOr(t)

	err := g.ConditionAll([]int{1, -1})
	require.Error(t, err)
	require.IsType(t, &UsageError{}, err)
}

func TestConditionTwiceOnSameLiteralIsIdempotent(t *testing.T) {
	g := buildOr(t)
	require.NoError(t, g.Condition(1))
	firstRoot := g.RootID()
	firstCount := g.NodeCount()

	require.NoError(t, g.Condition(1))

	require.Equal(t, firstRoot, g.RootID())
	require.Equal(t, firstCount, g.NodeCount())
}

func TestSequentialConditionOnOppositeLiteralsYieldsFalse(t *testing.T) {
	g := buildOr(t)

	require.NoError(t, g.Condition(1))
	require.NoError(t, g.Condition(-1))

	view, ok := g.GetNode(g.RootID())
	require.True(t, ok)
	require.Equal(t, KindFalse, view.Kind, "conditioning on v then -v must collapse the root to FALSE")
}

func TestConditioningOnDisjointVariablesCommutes(t *testing.T) {
	g1 := buildOr(t)
	require.NoError(t, g1.ConditionAll([]int{1, 2}))

	g2 := buildOr(t)
	require.NoError(t, g2.Condition(2))
	require.NoError(t, g2.Condition(1))

	view1, ok := g1.GetNode(g1.RootID())
	require.True(t, ok)
	view2, ok := g2.GetNode(g2.RootID())
	require.True(t, ok)
	require.Equal(t, view1.Kind, view2.Kind)
}

// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildWideOr(t *testing.T) *Graph {
	g := NewGraph()
	g.PrepareLiterals(3)
	l1, err := g.AddNode(KindLiteral, 1)
	require.NoError(t, err)
	l2, err := g.AddNode(KindLiteral, 2)
	require.NoError(t, err)
	l3, err := g.AddNode(KindLiteral, 3)
	require.NoError(t, err)
	or, err := g.AddNode(KindOr, 0)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(or, l1))
	require.NoError(t, g.AddEdge(or, l2))
	require.NoError(t, g.AddEdge(or, l3))
	g.rootID = or
	return g
}

func TestBalanceORRewritesWideFanoutToBinaryTree(t *testing.T) {
	g := buildWideOr(t)

	require.NoError(t, g.balanceOR(g.rootID))

	view, ok := g.GetNode(g.rootID)
	require.True(t, ok)
	require.Len(t, view.Children, 2, "a 3-ary OR must be rebalanced down to exactly two children")

	for _, c := range view.Children {
		cv, ok := g.GetNode(c)
		require.True(t, ok)
		require.True(t, cv.Kind == KindOr || cv.Kind == KindLiteral)
	}
}

func TestBalanceORLeavesAlreadyBinaryOrUntouched(t *testing.T) {
	g := buildOr(t)
	before, ok := g.GetNode(g.rootID)
	require.True(t, ok)

	require.NoError(t, g.balanceOR(g.rootID))

	after, ok := g.GetNode(g.rootID)
	require.True(t, ok)
	require.ElementsMatch(t, before.Children, after.Children)
}

func TestWriteC2DProducesStrictlyBinaryOrsReadableByReadC2D(t *testing.T) {
	g := buildWideOr(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "wide.c2d")
	require.NoError(t, WriteC2D(g, path))

	g2, err := ReadC2D(path)
	require.NoError(t, err)

	for id := 0; id < g2.NodeCount(); id++ {
		view, ok := g2.GetNode(id)
		require.True(t, ok)
		if view.Kind == KindOr {
			require.Len(t, view.Children, 2, "strict c2d reader must accept every OR emitted by WriteC2D")
		}
	}
}

func TestWriteC2DDoesNotMutateOriginalGraph(t *testing.T) {
	g := buildWideOr(t)
	originalCount := g.NodeCount()

	dir := t.TempDir()
	path := filepath.Join(dir, "wide.c2d")
	require.NoError(t, WriteC2D(g, path))

	require.Equal(t, originalCount, g.NodeCount())
	view, ok := g.GetNode(g.rootID)
	require.True(t, ok)
	require.Len(t, view.Children, 3, "the original, unbalanced graph must be untouched")
}

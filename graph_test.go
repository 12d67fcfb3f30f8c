// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddNodeEnforcesSingletonConstants(t *testing.T) {
	g := NewGraph()
	_, err := g.AddNode(KindTrue, 0)
	require.NoError(t, err)
	_, err = g.AddNode(KindTrue, 0)
	require.Error(t, err)
	require.IsType(t, &InternalError{}, err)
}

func TestAddNodeEnforcesSingletonLiteralPerSignedVar(t *testing.T) {
	g := NewGraph()
	g.PrepareLiterals(3)
	_, err := g.AddNode(KindLiteral, 1)
	require.NoError(t, err)
	_, err = g.AddNode(KindLiteral, 1)
	require.Error(t, err)

	_, err = g.AddNode(KindLiteral, -1)
	require.NoError(t, err, "the negation of an already-used variable is a distinct literal node")
}

func TestAddEdgeIsConverse(t *testing.T) {
	g := NewGraph()
	g.PrepareLiterals(2)
	a, err := g.AddNode(KindAnd, 0)
	require.NoError(t, err)
	l1, err := g.AddNode(KindLiteral, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(a, l1))

	parent := g.getNode(a)
	child := g.getNode(l1)
	require.Contains(t, parent.children, l1)
	require.Contains(t, child.parents, a)
}

func TestAddChildToLeafPanics(t *testing.T) {
	g := NewGraph()
	g.PrepareLiterals(1)
	l1, err := g.AddNode(KindLiteral, 1)
	require.NoError(t, err)
	l2, err := g.AddNode(KindLiteral, -1)
	require.NoError(t, err)
	require.Panics(t, func() {
		g.getNode(l1).addChild(l2)
	})
}

func TestGetNodeSnapshotIsReadOnly(t *testing.T) {
	g := NewGraph()
	g.PrepareLiterals(1)
	id, err := g.AddNode(KindLiteral, 1)
	require.NoError(t, err)

	view, ok := g.GetNode(id)
	require.True(t, ok)
	require.Equal(t, KindLiteral, view.Kind)
	require.Equal(t, 1, view.Lit)

	_, ok = g.GetNode(id + 100)
	require.False(t, ok)
}

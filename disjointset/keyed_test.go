package disjointset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/unionfind/disjointset"
)

// TestKeyed_LazyIDs verifies IDs are assigned densely in first-seen order.
func TestKeyed_LazyIDs(t *testing.T) {
	s := disjointset.NewKeyed[string]()
	assert.Equal(t, 0, s.ID("a"))
	assert.Equal(t, 1, s.ID("b"))
	assert.Equal(t, 0, s.ID("a"))
	assert.Equal(t, 2, s.Len())

	_, ok := s.Lookup("zzz")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len()) // Lookup never creates
	assert.Equal(t, "b", s.Key(1))
}

// TestKeyed_UnionFind covers union, find and connected over string keys.
func TestKeyed_UnionFind(t *testing.T) {
	s := disjointset.NewKeyed[string]()
	assert.True(t, s.Union("x", "y"))
	assert.True(t, s.Union("y", "z"))
	assert.False(t, s.Union("z", "x"))

	assert.True(t, s.Connected("x", "z"))
	assert.Equal(t, s.Find("x"), s.Find("z"))
	assert.False(t, s.Connected("x", "nope"))
	assert.Equal(t, 3, s.Len())

	// Find creates unknown keys as their own root.
	assert.Equal(t, "w", s.Find("w"))
	assert.Equal(t, 2, s.Count())
}

// TestKeyed_Groups checks group ordering and content.
func TestKeyed_Groups(t *testing.T) {
	type cell struct{ r, c int }
	s := disjointset.NewKeyed[cell]()
	s.Union(cell{0, 0}, cell{0, 1})
	s.ID(cell{5, 5})
	s.Union(cell{1, 1}, cell{0, 0})

	assert.Equal(t, [][]cell{
		{{0, 0}, {0, 1}, {1, 1}},
		{{5, 5}},
	}, s.Groups())
	assert.Equal(t, []cell{{0, 0}, {0, 1}, {5, 5}, {1, 1}}, s.Keys())
}

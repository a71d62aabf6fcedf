package redundant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/redundant"
)

// TestUndirected_Samples covers the triangle and a longer cycle with a tail.
func TestUndirected_Samples(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]int
		want  [2]int
		index int
	}{
		{"triangle", [][2]int{{1, 2}, {1, 3}, {2, 3}}, [2]int{2, 3}, 2},
		{"square with tail", [][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 4}, {1, 5}}, [2]int{1, 4}, 3},
		{"parallel edge", [][2]int{{1, 2}, {2, 1}}, [2]int{2, 1}, 1},
		{"self loop", [][2]int{{1, 2}, {3, 3}, {2, 3}}, [2]int{3, 3}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := redundant.Undirected(tc.edges)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Pair())
			assert.Equal(t, tc.index, got.Index)
		})
	}
}

// TestUndirected_Errors covers every guarded precondition that input can break.
func TestUndirected_Errors(t *testing.T) {
	_, err := redundant.Undirected(nil)
	assert.ErrorIs(t, err, redundant.ErrEmptyInput)

	_, err = redundant.Undirected([][2]int{{1, 2}, {2, 3}})
	assert.ErrorIs(t, err, redundant.ErrNodeOutOfRange)

	_, err = redundant.Undirected([][2]int{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, redundant.ErrNodeOutOfRange)

	_, err = redundant.Undirected([][2]int{{1, 2}, {1, 2}, {2, 1}})
	assert.ErrorIs(t, err, redundant.ErrMultipleRedundantEdges)
}

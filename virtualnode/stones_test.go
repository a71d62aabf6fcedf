package virtualnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/unionfind/virtualnode"
)

// TestRemoveStones covers the published boards.
func TestRemoveStones(t *testing.T) {
	cases := []struct {
		name   string
		stones [][2]int
		want   int
	}{
		{"l shape", [][2]int{{0, 0}, {0, 1}, {1, 1}}, 2},
		{"one component", [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, 5},
		{"corners and centre", [][2]int{{0, 0}, {0, 2}, {1, 1}, {2, 0}, {2, 2}}, 3},
		{"single", [][2]int{{0, 0}}, 0},
		{"none", nil, 0},
		{"row equals column value", [][2]int{{3, 5}, {5, 3}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, virtualnode.RemoveStones(tc.stones))
		})
	}
}

// TestStoneComponents keeps row and column namespaces apart.
func TestStoneComponents(t *testing.T) {
	// Row 1 and column 1 are distinct nodes, so these stones do not touch.
	assert.Equal(t, 2, virtualnode.StoneComponents([][2]int{{1, 2}, {3, 1}}))
	assert.Equal(t, 1, virtualnode.StoneComponents([][2]int{{1, 2}, {1, 7}, {4, 7}}))
	assert.Zero(t, virtualnode.StoneComponents(nil))
}

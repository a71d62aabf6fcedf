package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/equivalence"
)

// TestSmallestStringWithSwaps covers the published samples and trivial inputs.
func TestSmallestStringWithSwaps(t *testing.T) {
	cases := []struct {
		name  string
		s     string
		pairs [][2]int
		want  string
	}{
		{"two classes", "dcab", [][2]int{{0, 3}, {1, 2}}, "bacd"},
		{"chained", "dcab", [][2]int{{0, 3}, {1, 2}, {0, 2}}, "abcd"},
		{"full reverse", "cba", [][2]int{{0, 1}, {1, 2}}, "abc"},
		{"no pairs", "zyx", nil, "zyx"},
		{"single char", "q", [][2]int{{0, 0}}, "q"},
		{"untouched positions", "edcba", [][2]int{{1, 3}}, "ebcda"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := equivalence.SmallestStringWithSwaps(tc.s, tc.pairs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSmallestStringWithSwaps_OutOfRange rejects positions past the end.
func TestSmallestStringWithSwaps_OutOfRange(t *testing.T) {
	_, err := equivalence.SmallestStringWithSwaps("abc", [][2]int{{0, 3}})
	assert.ErrorIs(t, err, equivalence.ErrPairOutOfRange)

	_, err = equivalence.SmallestStringWithSwaps("", [][2]int{{0, 0}})
	assert.ErrorIs(t, err, equivalence.ErrPairOutOfRange)
}

// TestSmallestStringWithSwaps_NonASCII rejects multi-byte UTF-8 input, with and
// without pairs, instead of splitting runes.
func TestSmallestStringWithSwaps_NonASCII(t *testing.T) {
	got, err := equivalence.SmallestStringWithSwaps("héllo", [][2]int{{1, 2}})
	assert.ErrorIs(t, err, equivalence.ErrNotSingleByte)
	assert.Empty(t, got)

	_, err = equivalence.SmallestStringWithSwaps("日本", nil)
	assert.ErrorIs(t, err, equivalence.ErrNotSingleByte)

	got, err = equivalence.SmallestStringWithSwaps("ba~", [][2]int{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, "ab~", got)
}

package equivalence

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/katalvlaran/unionfind/disjointset"
)

var (
	// ErrPairOutOfRange indicates a swap pair naming a position outside 0..len(s)-1.
	ErrPairOutOfRange = errors.New("equivalence: swap position out of range")

	// ErrNotSingleByte indicates input containing bytes outside ASCII.
	// Swapping single bytes of a multi-byte UTF-8 sequence would corrupt it.
	ErrNotSingleByte = errors.New("equivalence: string contains non-ASCII bytes")
)

// SmallestStringWithSwaps returns the lexicographically smallest string
// reachable from s by swapping, any number of times, the bytes at any pair
// of positions listed in pairs. Positions are byte offsets, so s must be ASCII.
//
// Error Conditions:
//   - ErrNotSingleByte : s contains a byte >= 0x80.
//   - ErrPairOutOfRange: a pair names a position outside 0..len(s)-1.
//
// Steps:
//  1. Validate s and every pair.
//  2. Union the two positions of every pair.
//  3. For each set of positions (ascending), sort its bytes and write them
//     back in ascending position order.
//
// Complexity: O(n·log n + p·α(n)) time for n bytes and p pairs, O(n) memory.
func SmallestStringWithSwaps(s string, pairs [][2]int) (string, error) {
	// 1) Input checks.
	n := len(s)
	for i := 0; i < n; i++ {
		if s[i] >= utf8.RuneSelf {
			return "", fmt.Errorf("byte %d (0x%02x): %w", i, s[i], ErrNotSingleByte)
		}
	}
	for i, p := range pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return "", fmt.Errorf("pair %d %v with len=%d: %w", i, p, n, ErrPairOutOfRange)
		}
	}
	if n <= 1 || len(pairs) == 0 {
		return s, nil
	}

	// 2) Connected positions can be permuted freely.
	d := disjointset.New(n)
	for _, p := range pairs {
		d.Union(p[0], p[1])
	}

	// 3) Sets come back with positions already ascending.
	out := []byte(s)
	for _, positions := range d.Sets() {
		if len(positions) == 1 {
			continue
		}
		chars := make([]byte, len(positions))
		for i, pos := range positions {
			chars[i] = s[pos]
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		for i, pos := range positions {
			out[pos] = chars[i]
		}
	}

	return string(out), nil
}

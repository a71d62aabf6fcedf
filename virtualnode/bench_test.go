package virtualnode_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/unionfind/virtualnode"
)

// BenchmarkRegionsBySlashes measures a random 30×30 grid, the largest the problem admits.
func BenchmarkRegionsBySlashes(b *testing.B) {
	const n = 30
	r := rand.New(rand.NewSource(42))
	grid := make([]string, n)
	for i := range grid {
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(" /\\"[r.Intn(3)])
		}
		grid[i] = sb.String()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = virtualnode.RegionsBySlashes(grid)
	}
}

// BenchmarkRemoveStones measures 1000 random stones on a 10⁴×10⁴ board.
func BenchmarkRemoveStones(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	stones := make([][2]int, 1000)
	for i := range stones {
		stones[i] = [2]int{r.Intn(10_000), r.Intn(10_000)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = virtualnode.RemoveStones(stones)
	}
}

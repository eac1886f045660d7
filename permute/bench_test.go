package permute_test

import (
	"testing"

	"github.com/katalvlaran/lvwords/permute"
)

// BenchmarkPermutations_Distinct8 generates all 8! = 40320 permutations of 8 distinct bytes.
func BenchmarkPermutations_Distinct8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = permute.Permutations("abcdefgh")
	}
}

// BenchmarkWalk_Repeated streams the 34650 permutations of "mississippi" without collecting.
func BenchmarkWalk_Repeated(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = permute.Walk("mississippi", permute.WithoutCollect())
	}
}

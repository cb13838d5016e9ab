package hashing

import (
	"strconv"
	"testing"
)

func BenchmarkPositionHash(b *testing.B) {
	key := initialKey()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PositionHash(key)
	}
}

func BenchmarkPositionCounts_With(b *testing.B) {
	for _, size := range []int{1, 50, 500} {
		counts := PositionCounts{}
		for i := 0; i < size; i++ {
			counts[uint64(i)] = 1
		}
		b.Run("entries="+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				counts.With(uint64(i))
			}
		})
	}
}

package filtered_test

import (
	"testing"

	"github.com/dmitrymomot/filtered"
	"github.com/dmitrymomot/filtered/pkg/filters"
)

func BenchmarkBoxSet(b *testing.B) {
	box := filtered.MustNew(filters.Clamp(0, 130))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		box.Set(i)
	}
}

func BenchmarkValueSet(b *testing.B) {
	v := filtered.MustMake(filters.Clamp(0, 130))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Set(i)
	}
}

func BenchmarkChain(b *testing.B) {
	f := filtered.Chain[string](filters.Trim, filters.ToLower, filters.MaxRunes(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f("  Some User Input  ")
	}
}

func BenchmarkSetFilter(b *testing.B) {
	box := filtered.MustNewWith(filters.Clamp(0, 130), 42)
	loose := filters.Clamp(0, 130)
	strict := filters.Clamp(18, 130)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = box.SetFilter(strict)
		} else {
			_ = box.SetFilter(loose)
		}
	}
}

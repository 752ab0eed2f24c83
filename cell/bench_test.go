package cell

import "testing"

// ============================================================
// Codec Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=. -benchmem ./cell/

func BenchmarkParse_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("a")
	}
}

func BenchmarkParse_Maximal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("iv256IV")
	}
}

func BenchmarkParse_Invalid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("a257")
	}
}

func BenchmarkFormat_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Format(0)
	}
}

func BenchmarkFormat_Maximal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Format(255, 255, 255)
	}
}

func BenchmarkCoordString(b *testing.B) {
	c := MustNew(255, 255, 255)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.String()
	}
}

func BenchmarkValid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Valid("e4")
	}
}

package trace_test

import (
	"testing"

	"github.com/katalvlaran/flowpath/raster"
	"github.com/katalvlaran/flowpath/trace"
)

// BenchmarkTrace_Serpentine traces a 1000×1000 raster whose single path
// covers every cell.
// Complexity: O(R×C)
func BenchmarkTrace_Serpentine(b *testing.B) {
	const n = 1000
	g, err := raster.Wrap(serpentine(n), n, n)
	if err != nil {
		b.Fatalf("setup Wrap failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trace.Trace(g, 0, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTrace_Short measures per-call overhead on a short path; the
// visited set still spans the whole 1000×1000 grid.
func BenchmarkTrace_Short(b *testing.B) {
	const n = 1000
	codes := make([]uint8, n*n)
	for i := range codes {
		codes[i] = 4
	}
	g, err := raster.Wrap(codes, n, n)
	if err != nil {
		b.Fatalf("setup Wrap failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trace.Trace(g, n-10, n/2)
	}
}

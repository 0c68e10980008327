package division_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
)

func benchmarkDivide(b *testing.B, size int, opts ...division.Option) {
	g := openGrid(b, size, size,
		gridgraph.Point{Row: 0, Col: 0},
		gridgraph.Point{Row: 0, Col: size - 1},
		gridgraph.Point{Row: size - 1, Col: 0},
		gridgraph.Point{Row: size - 1, Col: size - 1},
	)
	p := division.DefaultParams()
	p.Variation = 0.02
	p.RandomLevel = 0.001
	p.MaxIterations = 500

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = division.Divide(context.Background(), g, p, opts...)
	}
}

func BenchmarkDivide_32(b *testing.B) { benchmarkDivide(b, 32) }

func BenchmarkDivide_32Serial(b *testing.B) { benchmarkDivide(b, 32, division.WithWorkers(1)) }

func BenchmarkDivide_32Geodesic(b *testing.B) {
	benchmarkDivide(b, 32, division.WithDistance(division.Geodesic))
}

func BenchmarkDivide_64(b *testing.B) { benchmarkDivide(b, 64) }

package bench_test

import (
	"math/rand"
	"testing"

	"github.com/rwcarlsen/moea"
	"github.com/rwcarlsen/moea/bench"
	"github.com/rwcarlsen/moea/mesh"
	"github.com/rwcarlsen/moea/moead"
)

const (
	seed   = 7
	maxgen = 100
)

func TestBenchAll(t *testing.T) {
	for _, fn := range bench.AllFuncs {
		s := buildSolver(fn)
		bench.Benchmark(t, s, fn)
	}
}

func buildSolver(fn bench.Func) *moea.Solver {
	low, up := fn.Bounds()

	start := make([]float64, len(low))
	for i := range start {
		start[i] = low[i] + (up[i]-low[i])/2
	}

	it := moead.NewIterator(nil, start,
		moead.PopSize(40),
		moead.NeighborhoodSize(8),
		moead.MutationStrength((up[0]-low[0])/10),
		moead.Bounds(low, up),
		moead.Rng(rand.New(rand.NewSource(seed))),
	)
	return &moea.Solver{
		Iter:   it,
		Objs:   fn.Objs(),
		Mesh:   mesh.NewBounded(&mesh.Infinite{}, low, up),
		MaxGen: maxgen,
	}
}

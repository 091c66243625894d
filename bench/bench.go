// Package bench provides multi-objective benchmark problems from the
// evolutionary optimization literature for testing solvers, along with a
// Benchmark helper that runs a solver and checks basic front sanity.
package bench

import (
	"fmt"
	"math"
	"testing"

	"github.com/rwcarlsen/moea"
)

var AllFuncs = []Func{
	SchafferN1{},
	FonsecaFleming{NDim: 3},
	ZDT1{NDim: 10},
}

type Func interface {
	Name() string
	Objs() []moea.Objectiver
	Bounds() (low, up []float64)
}

// SchafferN1 is the classic one-variable problem f1 = x^2, f2 = (x-2)^2
// with the analytic Pareto set x in [0, 2].
type SchafferN1 struct{}

func (fn SchafferN1) Name() string { return "SchafferN1" }

func (fn SchafferN1) Objs() []moea.Objectiver {
	return []moea.Objectiver{
		moea.Func(func(x []float64) float64 { return x[0] * x[0] }),
		moea.Func(func(x []float64) float64 { return (x[0] - 2) * (x[0] - 2) }),
	}
}

func (fn SchafferN1) Bounds() (low, up []float64) {
	return []float64{-10}, []float64{10}
}

type FonsecaFleming struct {
	NDim int
}

func (fn FonsecaFleming) Name() string { return fmt.Sprintf("FonsecaFleming_%vD", fn.NDim) }

func (fn FonsecaFleming) Objs() []moea.Objectiver {
	shift := 1 / math.Sqrt(float64(fn.NDim))
	f := func(sign float64) moea.Func {
		return func(x []float64) float64 {
			tot := 0.0
			for _, v := range x {
				tot += (v - sign*shift) * (v - sign*shift)
			}
			return 1 - math.Exp(-tot)
		}
	}
	return []moea.Objectiver{f(1), f(-1)}
}

func (fn FonsecaFleming) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -4
		up[i] = 4
	}
	return low, up
}

type ZDT1 struct {
	NDim int
}

func (fn ZDT1) Name() string { return fmt.Sprintf("ZDT1_%vD", fn.NDim) }

func (fn ZDT1) Objs() []moea.Objectiver {
	g := func(x []float64) float64 {
		tot := 0.0
		for _, v := range x[1:] {
			tot += v
		}
		return 1 + 9*tot/float64(len(x)-1)
	}
	return []moea.Objectiver{
		moea.Func(func(x []float64) float64 { return x[0] }),
		moea.Func(func(x []float64) float64 {
			gv := g(x)
			return gv * (1 - math.Sqrt(x[0]/gv))
		}),
	}
}

func (fn ZDT1) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range up {
		up[i] = 1
	}
	return low, up
}

// Benchmark runs the solver to completion on fn and checks that the front
// is non-empty and every member respects the problem bounds.
func Benchmark(t *testing.T, s *moea.Solver, fn Func) {
	if err := s.Run(); err != nil {
		t.Errorf("[FAIL:%v] %v", fn.Name(), err)
		return
	}

	front := s.Front()
	if len(front) == 0 {
		t.Errorf("[FAIL:%v] empty front after %v generations", fn.Name(), s.Ngen())
		return
	}
	for _, p := range front {
		if !InsideBounds(p.Pos(), fn) {
			t.Errorf("[FAIL:%v] front member %v violates bounds", fn.Name(), p.Pos())
			return
		}
	}

	t.Logf("[pass:%v] %v gens and %v evals: %v front members, f1 spread [%v, %v]",
		fn.Name(), s.Ngen(), s.Neval(), len(front), front[0].ObjAt(0), front[len(front)-1].ObjAt(0))
}

func InsideBounds(p []float64, fn Func) bool {
	low, up := fn.Bounds()
	for i := range p {
		if p[i] < low[i] || p[i] > up[i] {
			return false
		}
	}
	return true
}

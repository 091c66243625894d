package moea

import (
	"errors"
	"testing"

	"github.com/rwcarlsen/moea/mesh"
)

// fakeIter returns a fixed front and canned errors for driving the solver.
type fakeIter struct {
	fronts [][]Point
	calls  int
	err    error
	failAt int
}

func (it *fakeIter) Iterate(objs []Objectiver, m mesh.Mesh) ([]Point, int, error) {
	it.calls++
	if it.failAt > 0 && it.calls >= it.failAt {
		return nil, 0, it.err
	}
	f := it.fronts[len(it.fronts)-1]
	if it.calls <= len(it.fronts) {
		f = it.fronts[it.calls-1]
	}
	return f, 10, nil
}

func TestSolverMaxGen(t *testing.T) {
	it := &fakeIter{fronts: [][]Point{{NewPoint([]float64{1}, []float64{1})}}}
	s := &Solver{Iter: it, MaxGen: 4}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if s.Ngen() != 4 {
		t.Errorf("ran %v generations, want 4", s.Ngen())
	}
	if s.Neval() != 40 {
		t.Errorf("counted %v evals, want 40", s.Neval())
	}
	if s.Next() {
		t.Errorf("Next returned true after termination")
	}
	if s.Ngen() != 4 {
		t.Errorf("Next after termination ran another generation")
	}
}

func TestSolverMaxEval(t *testing.T) {
	it := &fakeIter{fronts: [][]Point{{NewPoint([]float64{1}, []float64{1})}}}
	s := &Solver{Iter: it, MaxEval: 25}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if s.Ngen() != 3 {
		t.Errorf("ran %v generations, want 3 (10 evals each against a cap of 25)", s.Ngen())
	}
}

func TestSolverMaxNoImprove(t *testing.T) {
	p1 := NewPoint([]float64{1}, []float64{1})
	p2 := NewPoint([]float64{2}, []float64{0.5})
	it := &fakeIter{fronts: [][]Point{{p1}, {p2}, {p2}}}
	s := &Solver{Iter: it, MaxNoImprove: 2}

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	// gen 1 and 2 change the front; gens 3 and 4 repeat it
	if s.Ngen() != 4 {
		t.Errorf("ran %v generations, want 4", s.Ngen())
	}
}

func TestSolverErr(t *testing.T) {
	fakeErr := errors.New("fake error")
	it := &fakeIter{
		fronts: [][]Point{{NewPoint([]float64{1}, []float64{1})}},
		err:    fakeErr,
		failAt: 3,
	}
	s := &Solver{Iter: it, MaxGen: 10}

	if err := s.Run(); !errors.Is(err, fakeErr) {
		t.Errorf("Run returned %v, want the iterator's error", err)
	}
	if s.Ngen() != 2 {
		t.Errorf("counted %v completed generations, want 2", s.Ngen())
	}
	// front from the last good generation survives
	if len(s.Front()) != 1 {
		t.Errorf("front was lost after the error")
	}
}

package mesh

import (
	"math"
	"testing"
)

func TestInfiniteContinuous(t *testing.T) {
	m := &Infinite{}
	p := []float64{1.3, -2.7}
	got := m.Nearest(p)
	if got[0] != 1.3 || got[1] != -2.7 {
		t.Errorf("continuous mesh moved %v to %v", p, got)
	}

	got[0] = 99
	if p[0] != 1.3 {
		t.Errorf("Nearest aliased its argument")
	}
}

func TestInfiniteGrid(t *testing.T) {
	m := &Infinite{Origin: []float64{0.5, 0}, StepSize: 1}
	got := m.Nearest([]float64{1.2, -1.6})
	if got[0] != 1.5 || got[1] != -2 {
		t.Errorf("grid projection gave %v, want [1.5 -2]", got)
	}
}

func TestBounded(t *testing.T) {
	m := NewBounded(&Infinite{}, []float64{-1, -1}, []float64{1, 1})
	got := m.Nearest([]float64{5, -0.5})
	if got[0] != 1 || got[1] != -0.5 {
		t.Errorf("bounded projection gave %v, want [1 -0.5]", got)
	}
}

func TestInteger(t *testing.T) {
	m := &Integer{Core: NewBounded(&Infinite{}, []float64{-10}, []float64{10})}
	got := m.Nearest([]float64{2.7})
	if got[0] != 3 {
		t.Errorf("integer projection gave %v, want 3", got)
	}

	got = m.Nearest([]float64{-12.2})
	if math.Abs(got[0]+10) > 1e-12 {
		t.Errorf("integer projection of out-of-bounds point gave %v, want -10", got)
	}
}

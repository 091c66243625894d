// Package pop holds the candidate population for one optimizer run: one
// point per subproblem, each with its cached objective vector, plus the
// running ideal point.
package pop

import (
	"math"

	"github.com/rwcarlsen/moea"
)

// Population is a fixed-size set of candidate points.  Members are replaced
// whole (position and objectives together), never resized.
type Population struct {
	points []moea.Point
	ideal  []float64
}

// New creates n points by copying start and perturbing each coordinate with
// uniform noise spanning half the bound range, clamped into [low, up].
// start, low, and up must all have the same length.
func New(n int, start, low, up []float64, rng moea.Rng) *Population {
	if len(low) != len(start) || len(up) != len(start) {
		panic("start point and bound vectors are not same length")
	}

	points := make([]moea.Point, n)
	for i := 0; i < n; i++ {
		pos := make([]float64, len(start))
		for j := range pos {
			pos[j] = start[j] + (rng.Float64()-0.5)*(up[j]-low[j])
			pos[j] = math.Max(low[j], math.Min(up[j], pos[j]))
		}
		points[i] = moea.NewPoint(pos, nil)
	}
	return &Population{points: points}
}

func (p *Population) Len() int { return len(p.points) }

func (p *Population) At(i int) moea.Point { return p.points[i] }

// Points returns a copy of the member slice.
func (p *Population) Points() []moea.Point {
	points := make([]moea.Point, len(p.points))
	copy(points, p.points)
	return points
}

// Evaluate computes the objective vector for every member and folds each
// result into the ideal point.  It reports the number of candidate
// evaluations performed.
func (p *Population) Evaluate(ev moea.Evaler, objs []moea.Objectiver) (n int, err error) {
	results, n, err := ev.Eval(objs, p.points...)
	for i, res := range results {
		if res.NumObj() == len(objs) {
			p.points[i] = res
			p.UpdateIdeal(res)
		}
	}
	return n, err
}

// UpdateIdeal folds pt's objective vector into the ideal point - the
// componentwise minimum over every evaluation seen so far.  This and
// Evaluate are the only places the ideal point mutates.
func (p *Population) UpdateIdeal(pt moea.Point) {
	if p.ideal == nil {
		p.ideal = make([]float64, pt.NumObj())
		for k := range p.ideal {
			p.ideal[k] = math.Inf(1)
		}
	}
	for k := range p.ideal {
		p.ideal[k] = math.Min(p.ideal[k], pt.ObjAt(k))
	}
}

// Ideal returns a copy of the current ideal point (nil before the first
// evaluation).
func (p *Population) Ideal() []float64 {
	if p.ideal == nil {
		return nil
	}
	ideal := make([]float64, len(p.ideal))
	copy(ideal, p.ideal)
	return ideal
}

// Replace overwrites member i.  Since a Point carries position and
// objectives together, the swap is atomic - both or neither.
func (p *Population) Replace(i int, pt moea.Point) {
	p.points[i] = pt
}

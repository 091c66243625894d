// Package moead implements the MOEA/D algorithm (Zhang and Li, 2008):
// multi-objective evolution where the problem is decomposed into one scalar
// subproblem per weight vector and mating/replacement are restricted to
// each subproblem's neighborhood.
package moead

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/rwcarlsen/moea"
	"github.com/rwcarlsen/moea/mesh"
	"github.com/rwcarlsen/moea/pareto"
	"github.com/rwcarlsen/moea/pop"
	"github.com/rwcarlsen/moea/weights"
)

const (
	DefaultPopSize      = 100
	DefaultCrossProb    = 0.6
	DefaultMutProb      = 0.3
	DefaultMutStrength  = 1e-3
	DefaultNeighborSize = 50
	// DefaultGlobalProb is the chance per mating of drawing parents from
	// the whole population instead of the subproblem's neighborhood.
	DefaultGlobalProb = 0.1
)

type Option func(*Iterator)

func PopSize(n int) Option {
	return func(it *Iterator) { it.PopSize = n }
}

func CrossoverProb(p float64) Option {
	return func(it *Iterator) { it.CrossProb = p }
}

func MutationProb(p float64) Option {
	return func(it *Iterator) { it.MutProb = p }
}

func MutationStrength(s float64) Option {
	return func(it *Iterator) { it.MutStrength = s }
}

func NeighborhoodSize(n int) Option {
	return func(it *Iterator) { it.NeighborSize = n }
}

func GlobalMateProb(p float64) Option {
	return func(it *Iterator) { it.GlobalProb = p }
}

// Bounds sets the box bounds on each variable.  Length-1 vectors are
// broadcast to the full variable dimension.
func Bounds(low, up []float64) Option {
	return func(it *Iterator) {
		it.Low = low
		it.Up = up
	}
}

func Rng(r moea.Rng) Option {
	return func(it *Iterator) { it.Rng = r }
}

func DB(db *sql.DB) Option {
	return func(it *Iterator) { it.Db = db }
}

// Iterator runs one MOEA/D generation per Iterate call.  Fields may be
// adjusted between runs; changing them mid-run is not supported.
type Iterator struct {
	ev    moea.Evaler
	start []float64

	PopSize      int
	CrossProb    float64
	MutProb      float64
	MutStrength  float64
	NeighborSize int
	GlobalProb   float64
	Low, Up      []float64
	Rng          moea.Rng
	Db           *sql.DB

	ws   *weights.Set
	pop  *pop.Population
	arch *pareto.Archive
	low  []float64 // broadcast bounds
	up   []float64
	gen  int
}

// NewIterator creates a MOEA/D iterator seeded around the start point.  If
// e is nil, a SerialEvaler is used.  Defaults follow the package constants;
// bounds default to the degenerate box [1, 1] broadcast over the variable
// dimension.
func NewIterator(e moea.Evaler, start []float64, opts ...Option) *Iterator {
	if e == nil {
		e = moea.SerialEvaler{}
	}
	it := &Iterator{
		ev:           e,
		start:        append([]float64{}, start...),
		PopSize:      DefaultPopSize,
		CrossProb:    DefaultCrossProb,
		MutProb:      DefaultMutProb,
		MutStrength:  DefaultMutStrength,
		NeighborSize: DefaultNeighborSize,
		GlobalProb:   DefaultGlobalProb,
		Low:          []float64{1},
		Up:           []float64{1},
		Rng:          moea.Rand,
	}

	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Generation returns the number of completed generations.
func (it *Iterator) Generation() int { return it.gen }

// Population returns a copy of the current population (nil before the
// first generation begins).
func (it *Iterator) Population() []moea.Point {
	if it.pop == nil {
		return nil
	}
	return it.pop.Points()
}

// Ideal returns a copy of the current ideal point (nil before the first
// evaluation).
func (it *Iterator) Ideal() []float64 {
	if it.pop == nil {
		return nil
	}
	return it.pop.Ideal()
}

// init validates configuration and builds weights, population, and archive.
// It fails before any objective evaluation on a bad configuration.
func (it *Iterator) init(objs []moea.Objectiver) (n int, err error) {
	if len(objs) == 0 {
		return 0, fmt.Errorf("no objective functions supplied")
	} else if len(it.start) == 0 {
		return 0, fmt.Errorf("start point has no variables")
	} else if it.PopSize < 2 {
		return 0, fmt.Errorf("population size %v is too small", it.PopSize)
	} else if it.NeighborSize < 2 {
		return 0, fmt.Errorf("neighborhood size %v is too small - mating needs two distinct parents", it.NeighborSize)
	}

	it.low, err = moea.Broadcast(it.Low, len(it.start))
	if err != nil {
		return 0, fmt.Errorf("lower bound: %v", err)
	}
	it.up, err = moea.Broadcast(it.Up, len(it.start))
	if err != nil {
		return 0, fmt.Errorf("upper bound: %v", err)
	}
	for j := range it.low {
		if it.low[j] > it.up[j] {
			return 0, fmt.Errorf("lower bound %v exceeds upper bound %v in dimension %v", it.low[j], it.up[j], j)
		}
	}

	it.ws, err = weights.New(it.PopSize, len(objs), it.NeighborSize, it.Rng)
	if err != nil {
		return 0, err
	}

	it.pop = pop.New(it.PopSize, it.start, it.low, it.up, it.Rng)
	n, err = it.pop.Evaluate(it.ev, objs)
	if err != nil {
		return n, err
	}

	it.arch = pareto.NewArchive()
	for i := 0; i < it.pop.Len(); i++ {
		it.arch.Update(it.pop.At(i))
	}

	it.initdb()
	return n, nil
}

// Iterate runs one full subproblem sweep.  The first call also initializes
// and evaluates the population (those evaluations count toward n).  The
// returned front is the archive snapshot after the sweep.
func (it *Iterator) Iterate(objs []moea.Objectiver, m mesh.Mesh) (front []moea.Point, n int, err error) {
	if it.gen == 0 {
		n, err = it.init(objs)
		if err != nil {
			return nil, n, err
		}
	}

	for i := 0; i < it.PopSize; i++ {
		a, b := it.selectParents(i)
		child := crossover(it.pop.At(a).Pos(), it.pop.At(b).Pos(), it.CrossProb, it.Rng)
		mutate(child, it.low, it.up, it.MutProb, it.MutStrength, it.Rng)
		if m != nil {
			child = m.Nearest(child)
		}

		results, nev, err := it.ev.Eval(objs, moea.NewPoint(child, nil))
		n += nev
		if err != nil {
			return it.arch.Snapshot(), n, fmt.Errorf("subproblem %v: %w", i, err)
		}
		cand := results[0]

		it.pop.UpdateIdeal(cand)
		ideal := it.pop.Ideal()
		for _, j := range it.ws.Neighborhood(i) {
			w := it.ws.Vec(j)
			if Tchebycheff(w, ideal, cand.Objs()) <= Tchebycheff(w, ideal, it.pop.At(j).Objs()) {
				it.pop.Replace(j, cand)
			}
		}

		it.arch.Update(cand)
	}

	it.gen++
	it.updateDb(n)
	return it.arch.Snapshot(), n, nil
}

// selectParents returns two distinct member indices, drawn from subproblem
// i's neighborhood or - with probability GlobalProb - from the whole
// population.
func (it *Iterator) selectParents(i int) (a, b int) {
	if it.Rng.Float64() < it.GlobalProb {
		a = it.Rng.Intn(it.PopSize)
		b = it.Rng.Intn(it.PopSize)
		for b == a {
			b = it.Rng.Intn(it.PopSize)
		}
		return a, b
	}

	neigh := it.ws.Neighborhood(i)
	ai := it.Rng.Intn(len(neigh))
	bi := it.Rng.Intn(len(neigh))
	for bi == ai {
		bi = it.Rng.Intn(len(neigh))
	}
	return neigh[ai], neigh[bi]
}

// crossover returns a child position taking each coordinate from pa with
// probability crossProb and from pb otherwise.
func crossover(pa, pb []float64, crossProb float64, rng moea.Rng) []float64 {
	child := make([]float64, len(pa))
	for j := range child {
		if rng.Float64() < crossProb {
			child[j] = pa[j]
		} else {
			child[j] = pb[j]
		}
	}
	return child
}

// mutate perturbs each coordinate with probability mutProb by Gaussian
// noise scaled by strength, then clamps it back into [low, up].
func mutate(child, low, up []float64, mutProb, strength float64, rng moea.Rng) {
	for j := range child {
		if rng.Float64() < mutProb {
			child[j] += rng.NormFloat64() * strength
		}
		child[j] = math.Max(low[j], math.Min(up[j], child[j]))
	}
}

// Tchebycheff decomposes an objective vector into the single scalar
// max_k(w[k] * |vals[k] - ideal[k]|).  Lower is better.  All three vectors
// must have the same length.
func Tchebycheff(w, ideal, vals []float64) float64 {
	if len(w) != len(ideal) || len(w) != len(vals) {
		panic("weight, ideal, and objective vectors are not same length")
	}

	worst := 0.0
	for k := range w {
		if v := w[k] * math.Abs(vals[k]-ideal[k]); v > worst {
			worst = v
		}
	}
	return worst
}

// Optimize builds an iterator and solver, runs maxgen generations, and
// returns the first objective value of the lowest-f1 front member along
// with the full front.  It is a convenience wrapper; use a Solver directly
// for generation-by-generation control.
func Optimize(objs []moea.Objectiver, start []float64, maxgen int, opts ...Option) (float64, []moea.Point, error) {
	it := NewIterator(nil, start, opts...)

	low, err := moea.Broadcast(it.Low, len(start))
	if err != nil {
		return math.Inf(1), nil, fmt.Errorf("lower bound: %v", err)
	}
	up, err := moea.Broadcast(it.Up, len(start))
	if err != nil {
		return math.Inf(1), nil, fmt.Errorf("upper bound: %v", err)
	}

	s := &moea.Solver{
		Iter:   it,
		Objs:   objs,
		Mesh:   mesh.NewBounded(&mesh.Infinite{}, low, up),
		MaxGen: maxgen,
	}
	if err := s.Run(); err != nil {
		return math.Inf(1), nil, err
	}

	front := s.Front()
	if len(front) == 0 {
		return math.Inf(1), front, fmt.Errorf("no front members after %v generations", s.Ngen())
	}
	return front[0].ObjAt(0), front, nil
}

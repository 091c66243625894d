package moea

import (
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrNonFinite is returned (wrapped) when an objective function evaluates to
// NaN or an infinity.  The optimizer never substitutes a default value for a
// non-finite result - doing so would silently corrupt the ideal point and
// the archive.
var ErrNonFinite = errors.New("objective value is not finite")

// Rand is the default random number stream used by solver components that
// aren't given their own.  Tests can swap it (or seed a fresh one) for
// reproducible runs.
var Rand Rng = rand.New(rand.NewSource(1))

type Rng interface {
	Float64() float64
	NormFloat64() float64
	Intn(n int) int
	Perm(n int) []int
}

// Point is a position in variable space together with its (possibly absent)
// cached objective vector.  Points are immutable values; replacing a
// population member swaps the whole point so position and objectives can
// never go out of sync.
type Point struct {
	pos  []float64
	vals []float64
}

// NewPoint copies pos and vals into a new point.  vals may be nil for a
// not-yet-evaluated point.
func NewPoint(pos, vals []float64) Point {
	cpos := make([]float64, len(pos))
	copy(cpos, pos)
	var cvals []float64
	if vals != nil {
		cvals = make([]float64, len(vals))
		copy(cvals, vals)
	}
	return Point{pos: cpos, vals: cvals}
}

func (p Point) At(i int) float64 { return p.pos[i] }

func (p Point) Len() int { return len(p.pos) }

func (p Point) Pos() []float64 {
	pos := make([]float64, len(p.pos))
	copy(pos, p.pos)
	return pos
}

// NumObj returns the number of cached objective values (zero if the point
// hasn't been evaluated).
func (p Point) NumObj() int { return len(p.vals) }

func (p Point) ObjAt(k int) float64 { return p.vals[k] }

func (p Point) Objs() []float64 {
	vals := make([]float64, len(p.vals))
	copy(vals, p.vals)
	return vals
}

func (p Point) Hash() [sha1.Size]byte {
	data := make([]byte, p.Len()*8)
	for i := 0; i < p.Len(); i++ {
		binary.BigEndian.PutUint64(data[i*8:], math.Float64bits(p.At(i)))
	}
	return sha1.Sum(data)
}

// L2Dist returns the Euclidean distance between the positions of p1 and p2.
func L2Dist(p1, p2 Point) float64 {
	tot := 0.0
	for i := 0; i < p1.Len(); i++ {
		diff := p1.At(i) - p2.At(i)
		tot += diff * diff
	}
	return math.Sqrt(tot)
}

type Objectiver interface {
	// Objective evaluates the variables in v and returns the objective
	// function value.  Objectives must be framed so that lower values are
	// better.  Returning an error stops the run.
	Objective(v []float64) (float64, error)
}

type Func func([]float64) float64

func (f Func) Objective(v []float64) (float64, error) { return f(v), nil }

// Broadcast expands a length-1 bounds vector to ndim entries.  A vector
// already of length ndim is returned as a copy.  Any other length is a
// configuration error.
func Broadcast(b []float64, ndim int) ([]float64, error) {
	switch len(b) {
	case 1:
		v := make([]float64, ndim)
		for i := range v {
			v[i] = b[0]
		}
		return v, nil
	case ndim:
		v := make([]float64, ndim)
		copy(v, b)
		return v, nil
	}
	return nil, fmt.Errorf("bounds have %v entries - want 1 or %v", len(b), ndim)
}

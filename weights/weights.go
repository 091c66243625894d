// Package weights generates the weight vectors that decompose a
// multi-objective problem into scalar subproblems, along with each
// subproblem's neighborhood of closest weight vectors.
package weights

import (
	"fmt"
	"sort"

	"github.com/gonum/blas/goblas"
	"github.com/gonum/matrix/mat64"

	"github.com/rwcarlsen/moea"
)

func init() {
	mat64.Register(goblas.Blasser)
}

// Set holds one weight vector per subproblem plus the precomputed
// neighborhood index lists.  Sets are built once per run and never mutated.
type Set struct {
	w     *mat64.Dense // n x nobj, one weight vector per row
	neigh [][]int
}

// New generates n weight vectors over the nobj-simplex and, for each vector,
// the indices of its size nearest neighbors by Euclidean distance (ties
// broken by index order, self always included).  Two-objective vectors are
// spaced uniformly along the simplex edge; for more objectives vectors are
// sampled uniformly on the simplex via sorted uniform gaps, deterministic
// for a given rng.  New fails if size exceeds n.
func New(n, nobj, size int, rng moea.Rng) (*Set, error) {
	if size > n {
		return nil, fmt.Errorf("neighborhood size %v exceeds population size %v", size, n)
	} else if n < 1 || nobj < 1 {
		return nil, fmt.Errorf("need at least one subproblem and one objective (got %v, %v)", n, nobj)
	}

	w := mat64.NewDense(n, nobj, nil)
	for i := 0; i < n; i++ {
		switch {
		case nobj == 1:
			w.Set(i, 0, 1)
		case nobj == 2:
			t := 0.5
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			w.Set(i, 0, t)
			w.Set(i, 1, 1-t)
		default:
			for j, v := range simplexSample(nobj, rng) {
				w.Set(i, j, v)
			}
		}
	}

	s := &Set{w: w}
	s.buildNeighborhoods(size)
	return s, nil
}

// simplexSample draws a uniform point on the (nobj-1)-simplex: sort nobj-1
// uniforms and take the gaps between successive values.
func simplexSample(nobj int, rng moea.Rng) []float64 {
	cuts := make([]float64, nobj+1)
	for i := 1; i < nobj; i++ {
		cuts[i] = rng.Float64()
	}
	cuts[nobj] = 1
	sort.Float64s(cuts)

	v := make([]float64, nobj)
	for i := range v {
		v[i] = cuts[i+1] - cuts[i]
	}
	return v
}

func (s *Set) buildNeighborhoods(size int) {
	n, _ := s.w.Dims()

	// dist^2(i,j) = G(i,i) + G(j,j) - 2*G(i,j) for the Gram matrix G = W*W^T.
	wt := &mat64.Dense{}
	wt.TCopy(s.w)
	g := &mat64.Dense{}
	g.Mul(s.w, wt)

	s.neigh = make([][]int, n)
	for i := 0; i < n; i++ {
		order := make([]int, n)
		for j := range order {
			order[j] = j
		}
		dist2 := func(j int) float64 { return g.At(i, i) + g.At(j, j) - 2*g.At(i, j) }
		sort.SliceStable(order, func(a, b int) bool {
			da, db := dist2(order[a]), dist2(order[b])
			if da == db {
				// self sorts first among duplicates so Neighborhood(i)
				// always contains i
				if order[a] == i || order[b] == i {
					return order[a] == i
				}
				return order[a] < order[b]
			}
			return da < db
		})
		s.neigh[i] = order[:size]
	}
}

// Len returns the number of weight vectors in the set.
func (s *Set) Len() int {
	n, _ := s.w.Dims()
	return n
}

// NumObj returns the number of objectives each weight vector spans.
func (s *Set) NumObj() int {
	_, m := s.w.Dims()
	return m
}

// Vec returns a copy of weight vector i.
func (s *Set) Vec(i int) []float64 {
	return s.w.Row(nil, i)
}

// Neighborhood returns a copy of the neighbor index list for subproblem i.
func (s *Set) Neighborhood(i int) []int {
	neigh := make([]int, len(s.neigh[i]))
	copy(neigh, s.neigh[i])
	return neigh
}

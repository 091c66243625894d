package moea

import "github.com/rwcarlsen/moea/mesh"

type Iterator interface {
	// Iterate runs a single generation of a solver and reports the current
	// non-dominated front and the number of candidate evaluations n.
	Iterate(objs []Objectiver, m mesh.Mesh) (front []Point, n int, err error)
}

// Solver drives an Iterator generation by generation and tracks
// termination.  The zero value with Iter and Objs set is usable; unset
// limits are ignored.  Callers wanting an external stop signal just break
// out of the Next loop - the front remains available.
type Solver struct {
	Iter Iterator
	Objs []Objectiver
	Mesh mesh.Mesh
	// MaxGen is the maximum number of generations to run.
	MaxGen int
	// MaxEval stops the run once this many candidate evaluations have
	// occurred.
	MaxEval int
	// MaxNoImprove stops the run after this many successive generations
	// without any change to the front.
	MaxNoImprove int

	ngen    int
	neval   int
	nstall  int
	front   []Point
	err     error
	stopped bool
}

func (s *Solver) Ngen() int { return s.ngen }

func (s *Solver) Neval() int { return s.neval }

func (s *Solver) Err() error { return s.err }

// Front returns the non-dominated front as of the most recent generation.
// It is empty until the first generation completes and stable between
// generations.
func (s *Solver) Front() []Point {
	front := make([]Point, len(s.front))
	copy(front, s.front)
	return front
}

// Next runs one generation and reports whether the solver can continue.
// After Next returns false, further calls do nothing.
func (s *Solver) Next() bool {
	if s.stopped || s.err != nil {
		return false
	}

	front, n, err := s.Iter.Iterate(s.Objs, s.Mesh)
	s.neval += n
	if err != nil {
		s.err = err
		s.stopped = true
		return false
	}
	s.ngen++

	if frontEqual(front, s.front) {
		s.nstall++
	} else {
		s.nstall = 0
	}
	s.front = front

	if s.MaxGen > 0 && s.ngen >= s.MaxGen {
		s.stopped = true
	} else if s.MaxEval > 0 && s.neval >= s.MaxEval {
		s.stopped = true
	} else if s.MaxNoImprove > 0 && s.nstall >= s.MaxNoImprove {
		s.stopped = true
	}
	return !s.stopped
}

// Run iterates until a termination condition fires or an error occurs.
func (s *Solver) Run() error {
	for s.Next() {
	}
	return s.err
}

func frontEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Hash() != b[i].Hash() {
			return false
		}
	}
	return true
}

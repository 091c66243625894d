package mesh

import "math"

// Mesh is an interface for projecting arbitrary dimensional points onto
// some kind of (potentially discrete, potentially bounded) variable space.
type Mesh interface {
	// Nearest returns the nearest mesh point to p.
	Nearest(p []float64) []float64
}

// Infinite is a grid-based, linear-axis mesh that extends in all dimensions
// without bounds.  If StepSize == 0, the mesh represents continuous space
// and Nearest just returns a copy of the point passed to it.  If
// Origin == nil, the origin is the zero vector.
type Infinite struct {
	Origin   []float64
	StepSize float64
}

func (m *Infinite) Nearest(p []float64) []float64 {
	nearest := make([]float64, len(p))
	copy(nearest, p)
	if m.StepSize == 0 {
		return nearest
	}

	if m.Origin == nil {
		m.Origin = make([]float64, len(p))
	} else if len(m.Origin) != len(p) {
		panic("mesh origin and point have different lengths")
	}

	for i := range nearest {
		n := math.Floor((nearest[i]-m.Origin[i])/m.StepSize + 0.5)
		nearest[i] = m.Origin[i] + n*m.StepSize
	}
	return nearest
}

// Bounded wraps another mesh with box bounds; points are clamped inside the
// bounds before being projected onto the underlying mesh.
type Bounded struct {
	Lower []float64
	Upper []float64
	core  Mesh
}

func NewBounded(m Mesh, lower, upper []float64) *Bounded {
	if len(lower) != len(upper) {
		panic("mesh lower and upper bound vectors have different lengths")
	}
	return &Bounded{
		Lower: lower,
		Upper: upper,
		core:  m,
	}
}

func (m *Bounded) Nearest(p []float64) []float64 {
	pdup := make([]float64, len(p))
	copy(pdup, p)
	for i := range pdup {
		pdup[i] = math.Max(m.Lower[i], pdup[i])
		pdup[i] = math.Min(m.Upper[i], pdup[i])
	}
	return m.core.Nearest(pdup)
}

// Integer snaps every coordinate of the underlying mesh's projection to the
// nearest whole number - useful for discrete-variable problems.
type Integer struct {
	Core Mesh
}

func (m *Integer) Nearest(p []float64) []float64 {
	nearest := m.Core.Nearest(p)
	for i := range nearest {
		nearest[i] = math.Floor(nearest[i] + 0.5)
	}
	return nearest
}

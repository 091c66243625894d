// Package pareto implements Pareto domination testing and the evolving
// archive of non-dominated solutions.
package pareto

import (
	"github.com/petar/GoLLRB/llrb"

	"github.com/rwcarlsen/moea"
)

// Dominates returns true iff first is componentwise less than or equal to
// second and strictly less in at least one objective.  It is a strict
// partial order: irreflexive, asymmetric, and transitive.  Both vectors
// must have the same length.
func Dominates(first, second []float64) bool {
	if len(first) != len(second) {
		panic("objective vectors are not same length")
	}

	better := false
	for i := range first {
		if first[i] > second[i] {
			return false
		}
		if first[i] < second[i] {
			better = true
		}
	}
	return better
}

type member struct {
	pt  moea.Point
	seq int
}

func (m member) Less(than llrb.Item) bool {
	o := than.(member)
	if m.pt.ObjAt(0) == o.pt.ObjAt(0) {
		return m.seq < o.seq
	}
	return m.pt.ObjAt(0) < o.pt.ObjAt(0)
}

// Archive is the evolving set of mutually non-dominated solutions, ordered
// by first objective value.  After any sequence of updates the archive is
// an antichain under Dominates.
type Archive struct {
	tree *llrb.LLRB
	seq  int
}

func NewArchive() *Archive {
	return &Archive{tree: llrb.New()}
}

func (a *Archive) Len() int { return a.tree.Len() }

// Update offers an evaluated candidate to the archive.  If any existing
// member dominates the candidate it is rejected; otherwise every member the
// candidate dominates is removed and the candidate inserted.  Update
// reports whether the archive changed.
func (a *Archive) Update(p moea.Point) bool {
	rejected := false
	var doomed []member
	a.tree.AscendGreaterOrEqual(a.tree.Min(), func(i llrb.Item) bool {
		m := i.(member)
		if Dominates(m.pt.Objs(), p.Objs()) {
			rejected = true
			return false
		}
		if Dominates(p.Objs(), m.pt.Objs()) {
			doomed = append(doomed, m)
		}
		return true
	})
	if rejected {
		return false
	}

	for _, m := range doomed {
		a.tree.Delete(m)
	}
	a.seq++
	a.tree.InsertNoReplace(member{pt: p, seq: a.seq})
	return true
}

// Snapshot returns the archive contents in ascending first-objective order.
// It is safe to call at any time and returns identical contents when no
// update has intervened.
func (a *Archive) Snapshot() []moea.Point {
	front := make([]moea.Point, 0, a.tree.Len())
	a.tree.AscendGreaterOrEqual(a.tree.Min(), func(i llrb.Item) bool {
		front = append(front, i.(member).pt)
		return true
	})
	return front
}

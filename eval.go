package moea

import (
	"crypto/sha1"
	"fmt"
	"math"
)

type Evaler interface {
	// Eval evaluates each point against every objective in objs and returns
	// the points with their objective vectors filled in, along with the
	// number of points evaluated.  Unevaluated points are not returned in
	// the results slice; a point whose evaluation failed is returned last.
	Eval(objs []Objectiver, points ...Point) (results []Point, n int, err error)
}

type SerialEvaler struct {
	ContinueOnErr bool
}

func (ev SerialEvaler) Eval(objs []Objectiver, points ...Point) (results []Point, n int, err error) {
	results = make([]Point, 0, len(points))
	for _, p := range points {
		vals := make([]float64, len(objs))
		for k, obj := range objs {
			vals[k], err = obj.Objective(p.Pos())
			if err == nil && (math.IsNaN(vals[k]) || math.IsInf(vals[k], 0)) {
				err = fmt.Errorf("objective %v at %v: %w", k, p.Pos(), ErrNonFinite)
			}
			if err != nil {
				break
			}
		}
		if err != nil {
			// no partial objective vectors - they would poison the ideal point
			results = append(results, NewPoint(p.Pos(), nil))
			if !ev.ContinueOnErr {
				return results, len(results), err
			}
			continue
		}
		results = append(results, NewPoint(p.Pos(), vals))
	}
	return results, len(results), nil
}

// CacheEvaler wraps another evaler and memoizes objective vectors by point
// position, so repeat visits to a position cost nothing.
type CacheEvaler struct {
	ev    Evaler
	cache map[[sha1.Size]byte][]float64
	// UseCount is the number of cache hits served so far.
	UseCount int
}

func NewCacheEvaler(ev Evaler) *CacheEvaler {
	return &CacheEvaler{
		ev:    ev,
		cache: map[[sha1.Size]byte][]float64{},
	}
}

func (ev *CacheEvaler) Eval(objs []Objectiver, points ...Point) (results []Point, n int, err error) {
	fromnew := make([]int, 0, len(points))
	newp := make([]Point, 0, len(points))
	results = make([]Point, len(points))
	for i, p := range points {
		if vals, ok := ev.cache[p.Hash()]; ok {
			results[i] = NewPoint(p.Pos(), vals)
			ev.UseCount++
		} else {
			fromnew = append(fromnew, i)
			newp = append(newp, p)
		}
	}

	newresults, n, err := ev.ev.Eval(objs, newp...)
	for i, p := range newresults {
		if err == nil || i < len(newresults)-1 {
			ev.cache[p.Hash()] = p.Objs()
		}
		results[fromnew[i]] = p
	}

	// shrink if an error resulted in fewer new results being returned
	if err != nil && len(fromnew) > 0 {
		results = results[:fromnew[len(newresults)-1]+1]
	}

	return results, n, err
}

// ObjectivePrinter wraps an Objectiver and prints every evaluation - handy
// as a progress hook on expensive objectives.
type ObjectivePrinter struct {
	Objectiver
	Count int
}

func NewObjectivePrinter(obj Objectiver) *ObjectivePrinter {
	return &ObjectivePrinter{Objectiver: obj}
}

func (op *ObjectivePrinter) Objective(v []float64) (float64, error) {
	val, err := op.Objectiver.Objective(v)

	op.Count++
	fmt.Print(op.Count, " ")
	for _, x := range v {
		fmt.Print(x, " ")
	}
	fmt.Println("    ", val)

	return val, err
}

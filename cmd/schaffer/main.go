package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rwcarlsen/moea"
	"github.com/rwcarlsen/moea/bench"
	"github.com/rwcarlsen/moea/mesh"
	"github.com/rwcarlsen/moea/moead"
)

const maxgen = 100

func main() {
	rng := rand.New(rand.NewSource(time.Now().Unix()))

	fn := bench.SchafferN1{}
	low, up := fn.Bounds()
	start := []float64{low[0] + rng.Float64()*(up[0]-low[0])}

	it := moead.NewIterator(nil, start,
		moead.PopSize(60),
		moead.NeighborhoodSize(10),
		moead.Bounds(low, up),
		moead.Rng(rng),
	)
	s := &moea.Solver{
		Iter:   it,
		Objs:   fn.Objs(),
		Mesh:   mesh.NewBounded(&mesh.Infinite{}, low, up),
		MaxGen: maxgen,
	}

	if err := s.Run(); err != nil {
		log.Fatal(err)
	}

	front := s.Front()
	xs := make([]float64, len(front))
	for i, p := range front {
		xs[i] = p.At(0)
		fmt.Printf("x=%v    f1=%v f2=%v\n", p.At(0), p.ObjAt(0), p.ObjAt(1))
	}
	fmt.Printf("%v front members after %v gens (%v evals), x in [%v, %v]\n",
		len(front), s.Ngen(), s.Neval(), floats.Min(xs), floats.Max(xs))

	if err := plotFront(front); err != nil {
		log.Fatal(err)
	}
	fmt.Println("front written to front.png")
}

func plotFront(front []moea.Point) error {
	p := plot.New()
	p.Title.Text = "Schaffer N.1 Pareto front"
	p.X.Label.Text = "f1"
	p.Y.Label.Text = "f2"

	xys := make(plotter.XYs, len(front))
	for i, pt := range front {
		xys[i].X = pt.ObjAt(0)
		xys[i].Y = pt.ObjAt(1)
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	p.Add(sc)

	return p.Save(6*vg.Inch, 6*vg.Inch, "front.png")
}

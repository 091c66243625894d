package moea

import (
	"errors"
	"math"
	"testing"
)

const errcount = 3

type ErrObj struct {
	count int
}

func (o *ErrObj) Objective(x []float64) (float64, error) {
	o.count++
	if o.count >= errcount {
		return math.Inf(1), errors.New("fake error")
	}
	return 0, nil
}

func TestSerialEvalerErr(t *testing.T) {
	objs := []Objectiver{&ErrObj{}}
	ev := SerialEvaler{}

	results, n, err := ev.Eval(objs, Point{}, Point{}, Point{}, Point{}, Point{})
	if len(results) != errcount {
		t.Errorf("returned wrong number of results: expected %v, got %v", errcount, len(results))
	}
	if n != errcount {
		t.Errorf("returned wrong evaluation count: expected %v, got %v", errcount, n)
	}
	if err == nil {
		t.Errorf("did not propogate error through return")
	}
}

func TestSerialEvalerNonFinite(t *testing.T) {
	objs := []Objectiver{
		Func(func(x []float64) float64 { return 1 }),
		Func(func(x []float64) float64 { return math.NaN() }),
	}
	ev := SerialEvaler{}

	_, _, err := ev.Eval(objs, NewPoint([]float64{1, 2}, nil))
	if err == nil {
		t.Fatalf("NaN objective did not produce an error")
	}
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("error %v does not wrap ErrNonFinite", err)
	}
}

type CountObj struct {
	count int
}

func (o *CountObj) Objective(x []float64) (float64, error) {
	o.count++
	return x[0] * x[0], nil
}

func TestCacheEvaler(t *testing.T) {
	obj := &CountObj{}
	objs := []Objectiver{obj}
	ev := NewCacheEvaler(SerialEvaler{})

	p := NewPoint([]float64{3}, nil)
	results, _, err := ev.Eval(objs, p)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].ObjAt(0) != 9 {
		t.Errorf("expected objective 9, got %v", results[0].ObjAt(0))
	}

	results, n, err := ev.Eval(objs, p)
	if err != nil {
		t.Fatal(err)
	}
	if obj.count != 1 {
		t.Errorf("cache did not prevent re-evaluation: %v objective calls", obj.count)
	}
	if ev.UseCount != 1 {
		t.Errorf("expected 1 cache hit, got %v", ev.UseCount)
	}
	if n != 0 {
		t.Errorf("cached eval reported %v evaluations", n)
	}
	if results[0].ObjAt(0) != 9 {
		t.Errorf("cached result has objective %v, want 9", results[0].ObjAt(0))
	}
}

func TestBroadcast(t *testing.T) {
	b, err := Broadcast([]float64{2}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 3 || b[0] != 2 || b[1] != 2 || b[2] != 2 {
		t.Errorf("broadcast of [2] to 3 dims gave %v", b)
	}

	b, err = Broadcast([]float64{1, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 3 || b[2] != 3 {
		t.Errorf("full-length broadcast gave %v", b)
	}

	if _, err := Broadcast([]float64{1, 2}, 3); err == nil {
		t.Errorf("length-2 bounds for 3 dims did not fail")
	}
}

func TestPointCopies(t *testing.T) {
	pos := []float64{1, 2}
	vals := []float64{3}
	p := NewPoint(pos, vals)
	pos[0] = 100
	vals[0] = 100
	if p.At(0) != 1 || p.ObjAt(0) != 3 {
		t.Errorf("point aliased caller slices: pos %v vals %v", p.Pos(), p.Objs())
	}
}

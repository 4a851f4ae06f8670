package engine

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestAddThenUndoRoundTrip(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)
	e.Add(Capacitor, 1e-6, Parallel)

	before := e.Components()
	seriesBefore, parallelBefore := e.Groups()

	id, err := e.Add(Inductor, 2, Series)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	if !reflect.DeepEqual(e.Components(), before) {
		t.Errorf("Components() = %v after undo, want %v", e.Components(), before)
	}
	series, parallel := e.Groups()
	if !reflect.DeepEqual(series, seriesBefore) || !reflect.DeepEqual(parallel, parallelBefore) {
		t.Errorf("groups = %v/%v after undo, want %v/%v", series, parallel, seriesBefore, parallelBefore)
	}

	// The undone ID is burned: the next add gets a fresh one.
	next, err := e.Add(Resistor, 50, Series)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if next == id {
		t.Errorf("id %d was reassigned after undo", id)
	}
	if next != id+1 {
		t.Errorf("next id = %d, want %d", next, id+1)
	}
}

func TestRemoveThenUndoRestoresComponent(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)
	e.Add(Resistor, 200, Series)

	if !e.Remove(1) {
		t.Fatal("Remove(1) = false")
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	c, ok := e.Find(1)
	if !ok {
		t.Fatal("component 1 missing after undo")
	}
	if c.Value != 100 || c.Type != Resistor || c.Group != Series {
		t.Errorf("restored component = %+v", c)
	}

	series, _ := e.Groups()
	if !reflect.DeepEqual(series, []ID{1, 2}) {
		t.Errorf("series = %v after undo, want [1 2]", series)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	e := New()
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
}

func TestAddInvalidValue(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)

	_, err := e.Add(Resistor, -1, Series)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Add() error = %v, want ErrInvalidValue", err)
	}

	if e.Len() != 1 {
		t.Errorf("Len() = %d after rejected add, want 1", e.Len())
	}
	if e.UndoDepth() != 1 {
		t.Errorf("UndoDepth() = %d after rejected add, want 1", e.UndoDepth())
	}
	if len(e.OperationLog()) != 1 {
		t.Errorf("log has %d entries after rejected add, want 1", len(e.OperationLog()))
	}
}

func TestRemoveUnknownLeavesEverything(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)

	if e.Remove(42) {
		t.Fatal("Remove(42) = true, want false")
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}
	if e.UndoDepth() != 1 {
		t.Errorf("UndoDepth() = %d, want 1", e.UndoDepth())
	}
	if len(e.OperationLog()) != 1 {
		t.Errorf("log has %d entries, want 1", len(e.OperationLog()))
	}
}

func TestLogMessages(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)
	e.Add(Capacitor, 0.5, Parallel)
	e.Remove(1)

	log := e.OperationLog()
	want := []string{
		"Added Resistor to SERIES circuit (ID=1, value=100)",
		"Added Capacitor to PARALLEL circuit (ID=2, value=0.5)",
		"Removed component ID=1",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("OperationLog() = %q, want %q", log, want)
	}
}

func TestLogEvictionAfter21Mutations(t *testing.T) {
	e := New()
	for i := 0; i < 21; i++ {
		if _, err := e.Add(Resistor, float64(i+1), Series); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	log := e.OperationLog()
	if len(log) != 20 {
		t.Fatalf("log has %d entries, want 20", len(log))
	}
	if strings.Contains(log[0], "ID=1,") {
		t.Errorf("oldest entry %q should have been evicted", log[0])
	}
	if !strings.Contains(log[19], "ID=21,") {
		t.Errorf("newest entry = %q, want the 21st mutation", log[19])
	}

	// The undo stack is not bounded by the log cap.
	if e.UndoDepth() != 21 {
		t.Errorf("UndoDepth() = %d, want 21", e.UndoDepth())
	}
}

func TestMaxUndoDepthOption(t *testing.T) {
	e := New(WithMaxUndoDepth(5))
	for i := 0; i < 10; i++ {
		e.Add(Resistor, 100, Series)
	}
	if e.UndoDepth() != 5 {
		t.Errorf("UndoDepth() = %d, want 5", e.UndoDepth())
	}
}

func TestQueryIdempotence(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)
	e.Add(Inductor, 5, Parallel)

	c1, ok1 := e.Find(2)
	c2, ok2 := e.Find(2)
	if !ok1 || !ok2 || c1 != c2 {
		t.Errorf("repeated Find(2) = %+v/%v then %+v/%v", c1, ok1, c2, ok2)
	}

	s1, p1 := e.Groups()
	s2, p2 := e.Groups()
	if !reflect.DeepEqual(s1, s2) || !reflect.DeepEqual(p1, p2) {
		t.Error("repeated Groups() returned different results")
	}
}

func TestAnalyzeScenario(t *testing.T) {
	e := New()
	e.Add(Resistor, 100, Series)
	e.Add(Resistor, 200, Series)
	e.Add(Capacitor, 1e-4, Parallel)

	report := e.Analyze(50)

	if report.SeriesResistance != 300 {
		t.Errorf("SeriesResistance = %v, want 300", report.SeriesResistance)
	}
	if !scalar.EqualWithinAbs(report.SeriesMagnitude, 300, tol) {
		t.Errorf("SeriesMagnitude = %v, want 300 (purely real)", report.SeriesMagnitude)
	}
	if report.ParallelResistance != 0 {
		t.Errorf("ParallelResistance = %v, want 0", report.ParallelResistance)
	}
	wantZ := 1 / (2 * math.Pi * 50 * 1e-4)
	if !scalar.EqualWithinAbsOrRel(report.ParallelMagnitude, wantZ, tol, tol) {
		t.Errorf("ParallelMagnitude = %v, want %v", report.ParallelMagnitude, wantZ)
	}
	if report.ComponentCount != 3 {
		t.Errorf("ComponentCount = %d, want 3", report.ComponentCount)
	}
}

func TestUndoChain(t *testing.T) {
	e := New()
	for i := 1; i <= 5; i++ {
		e.Add(Resistor, float64(i*100), Series)
	}

	// Unwind everything, one step at a time.
	for i := 5; i >= 1; i-- {
		if e.Len() != i {
			t.Fatalf("Len() = %d, want %d", e.Len(), i)
		}
		if err := e.Undo(); err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d after full unwind, want 0", e.Len())
	}
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() past the bottom error = %v, want ErrNothingToUndo", err)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	e := New()
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				e.Add(Resistor, float64(n*100+i+1), Series)
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				series, parallel := e.Groups()
				// Membership must always cover exactly the live set.
				if len(series)+len(parallel) != e.Len() {
					// Len may move between calls; recheck under a query
					// that takes both in one shot.
					report := e.Analyze(50)
					if report.SeriesCount+report.ParallelCount != report.ComponentCount {
						t.Errorf("mid-mutation state observed: %d+%d != %d",
							report.SeriesCount, report.ParallelCount, report.ComponentCount)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	if e.Len() != 200 {
		t.Errorf("Len() = %d, want 200", e.Len())
	}
}

func BenchmarkAddUndo(b *testing.B) {
	e := New(WithMaxUndoDepth(64))
	for i := 0; i < b.N; i++ {
		e.Add(Resistor, 100, Series)
		e.Undo()
	}
}

func BenchmarkAnalyze(b *testing.B) {
	e := New()
	for i := 0; i < 50; i++ {
		e.Add(Type(i%3), float64(i+1), Group(i%2))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Analyze(50)
	}
}

func ExampleEngine() {
	eng := New()
	eng.Add(Resistor, 100, Series)
	eng.Add(Resistor, 200, Series)

	report := eng.Analyze(50)
	fmt.Printf("R = %.0f Ohm\n", report.SeriesResistance)
	// Output: R = 300 Ohm
}

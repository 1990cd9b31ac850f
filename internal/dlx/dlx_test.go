package dlx

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"
	"time"
)

// wikipediaExample is the 7-constraint, 6-option matrix from Donald
// Knuth's Dancing Links paper (reachable from Wikipedia's "Exact cover"
// article): rows A..F, columns 0..6.
func wikipediaExample() [][]int {
	return [][]int{
		{0, 3, 6}, // A
		{0, 3},    // B
		{3, 4, 6}, // C
		{2, 4, 5}, // D
		{1, 2, 5, 6}, // E
		{1, 6},    // F
	}
}

func TestBuildMatrixRejectsOutOfRangeConstraint(t *testing.T) {
	_, err := BuildMatrix([][]int{{0, 7}}, 7)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestBuildMatrixRejectsNegativeConstraints(t *testing.T) {
	_, err := BuildMatrix(nil, -1)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestSolveAllWikipediaExample(t *testing.T) {
	m, err := BuildMatrix(wikipediaExample(), 7)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	var solutions [][]int
	if err := m.SolveAll(func(sol []int) {
		solutions = append(solutions, sol)
	}); err != nil {
		t.Fatalf("SolveAll: %v", err)
	}

	want := [][]int{{1, 3, 5}} // options B, D, F
	if !reflect.DeepEqual(solutions, want) {
		t.Errorf("solutions = %v, want %v", solutions, want)
	}
}

func TestSolveFirstWikipediaExample(t *testing.T) {
	m, err := BuildMatrix(wikipediaExample(), 7)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	sol, found := m.SolveFirst()
	if !found {
		t.Fatal("expected a solution")
	}
	got := append([]int(nil), sol...)
	sort.Ints(got)
	want := []int{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("solution = %v, want %v", got, want)
	}
}

func TestSolveAllEmptyMatrix(t *testing.T) {
	m, err := BuildMatrix(nil, 0)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	var solutions [][]int
	if err := m.SolveAll(func(sol []int) {
		solutions = append(solutions, sol)
	}); err != nil {
		t.Fatalf("SolveAll: %v", err)
	}

	if len(solutions) != 1 || len(solutions[0]) != 0 {
		t.Errorf("solutions = %v, want exactly one empty solution", solutions)
	}
}

func TestSolveAllUnsatisfiableIsolatedConstraint(t *testing.T) {
	m, err := BuildMatrix([][]int{{0}}, 2)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	var solutions [][]int
	if err := m.SolveAll(func(sol []int) {
		solutions = append(solutions, sol)
	}); err != nil {
		t.Fatalf("SolveAll: %v", err)
	}

	if len(solutions) != 0 {
		t.Errorf("solutions = %v, want none", solutions)
	}
}

func TestSolveAllForcedChain(t *testing.T) {
	m, err := BuildMatrix([][]int{{0}, {1}, {2}}, 3)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	var solutions [][]int
	if err := m.SolveAll(func(sol []int) {
		solutions = append(solutions, sol)
	}); err != nil {
		t.Fatalf("SolveAll: %v", err)
	}

	if len(solutions) != 1 {
		t.Fatalf("solutions = %v, want exactly one", solutions)
	}
	got := append([]int(nil), solutions[0]...)
	sort.Ints(got)
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("solution = %v, want %v", got, want)
	}
}

func TestDeterminismAcrossRuns(t *testing.T) {
	m1, _ := BuildMatrix(wikipediaExample(), 7)
	m2, _ := BuildMatrix(wikipediaExample(), 7)

	var s1, s2 [][]int
	m1.SolveAll(func(sol []int) { s1 = append(s1, sol) })
	m2.SolveAll(func(sol []int) { s2 = append(s2, sol) })

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("runs diverged: %v vs %v", s1, s2)
	}
}

func TestCoverUncoverIdentity(t *testing.T) {
	m, err := BuildMatrix(wikipediaExample(), 7)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	col := m.columns[3]
	sizesBefore := columnSizes(m)

	cover(col)
	uncover(col)

	sizesAfter := columnSizes(m)
	if !reflect.DeepEqual(sizesBefore, sizesAfter) {
		t.Errorf("column sizes changed: before %v, after %v", sizesBefore, sizesAfter)
	}
	if m.root.Right.Column.Index != 0 {
		t.Errorf("header ring corrupted after cover/uncover")
	}
}

func columnSizes(m *Matrix) []int {
	sizes := make([]int, len(m.columns))
	for i, c := range m.columns {
		sizes[i] = c.size
	}
	return sizes
}

func TestSolveFirstContextCancelled(t *testing.T) {
	// Build a matrix large enough that the search does not finish before
	// the already-cancelled context is observed at the first recursion.
	options := make([][]int, 0, 512)
	for i := range 9 {
		for j := range 9 {
			options = append(options, []int{i, 9 + j})
		}
	}
	m, err := BuildMatrix(options, 18)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = m.SolveFirstContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	// The matrix must come back with invariants intact.
	for _, c := range m.columns {
		if c.Left.Right != &c.Node || c.Right.Left != &c.Node {
			t.Errorf("column %d header ring corrupted after cancellation", c.Index)
		}
	}
}

func TestSolveFirstContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	m, _ := BuildMatrix(wikipediaExample(), 7)
	_, _, err := m.SolveFirstContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestCountSolutionsStopsAtMax(t *testing.T) {
	// Two identical single-constraint options both satisfy the one
	// constraint on their own: two solutions exist.
	m, err := BuildMatrix([][]int{{0}, {0}}, 1)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	if got := m.CountSolutions(1); got != 1 {
		t.Errorf("CountSolutions(1) = %d, want 1", got)
	}
}

func TestSelectColumnBreaksTiesLeftToRight(t *testing.T) {
	// Three single-node columns tie at size 1; selectColumn must choose
	// the leftmost (lowest index).
	m, err := BuildMatrix([][]int{{0}, {1}, {2}}, 3)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	got := selectColumn(m.root)
	if got.Index != 0 {
		t.Errorf("selectColumn picked index %d, want 0", got.Index)
	}
}

func TestStats(t *testing.T) {
	m, err := BuildMatrix(wikipediaExample(), 7)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	d := m.Stats()
	if d.Columns != 7 || d.Options != 6 {
		t.Errorf("Stats() = %+v, want Columns=7 Options=6", d)
	}
	if d.LiveNodes != 17 {
		t.Errorf("LiveNodes = %d, want 17", d.LiveNodes)
	}
}

func BenchmarkSolveFirstWikipediaExample(b *testing.B) {
	for b.Loop() {
		m, _ := BuildMatrix(wikipediaExample(), 7)
		m.SolveFirst()
	}
}

func ExampleMatrix_SolveAll() {
	m, err := BuildMatrix(wikipediaExample(), 7)
	if err != nil {
		panic(err)
	}
	m.SolveAll(func(sol []int) {
		sort.Ints(sol)
		fmt.Println(sol) // option ids of B, D, F
	})
	// Output: [1 3 5]
}

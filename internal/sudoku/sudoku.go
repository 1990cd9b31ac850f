// Package sudoku is the thin collaborator that reduces a 9x9 Sudoku grid
// to an exact cover problem solvable by package dlx, and decodes a
// solution's option ids back into a grid. It owns no search logic of its
// own: every row/column/box invariant is expressed purely as which of the
// 324 constraint columns an option touches.
package sudoku

import (
	"fmt"
	"sort"

	"github.com/kpitt/dlx/internal/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
)

// Constraint column layout: four bands of 81 columns each.
const (
	cellBand = 0   // r*9+c: exactly one digit in cell (r,c)
	rowBand  = 81  // r*9+(d-1): digit d appears once in row r
	colBand  = 162 // c*9+(d-1): digit d appears once in column c
	boxBand  = 243 // (r/3)*27+(c/3)*9+(d-1): digit d appears once in the box

	NumConstraints = 324
)

// Candidate is the (grid-row, grid-col, digit) placement one option in the
// exact cover matrix represents.
type Candidate struct {
	Row, Col, Value int
}

// Mapping recovers the Candidate behind each option id produced by
// searching a Matrix returned by Encode.
type Mapping []Candidate

// Encode builds the 324-column exact cover matrix for p's current grid
// state. A solved cell contributes exactly one option (its given digit);
// an unsolved cell contributes one option per remaining candidate digit.
func Encode(p *puzzle.Puzzle) (*dlx.Matrix, Mapping, error) {
	options := make([][]int, 0, 729)
	mapping := make(Mapping, 0, 729)

	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			if cell.IsSolved() {
				val := int(cell.Value())
				options = append(options, constraintRow(r, c, val))
				mapping = append(mapping, Candidate{r, c, val})
				continue
			}
			// Candidates come back from a map in unspecified order; sort
			// them so the encoded matrix (and the search's deterministic
			// order) doesn't depend on map iteration order.
			candidates := cell.CandidateValues()
			sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
			for _, val := range candidates {
				options = append(options, constraintRow(r, c, int(val)))
				mapping = append(mapping, Candidate{r, c, int(val)})
			}
		}
	}

	m, err := dlx.BuildMatrix(options, NumConstraints)
	if err != nil {
		return nil, nil, fmt.Errorf("sudoku: %w", err)
	}
	return m, mapping, nil
}

// constraintRow returns the four constraint columns the option placing
// val at (r,c) touches.
func constraintRow(r, c, val int) []int {
	d := val - 1
	return []int{
		cellBand + r*9 + c,
		rowBand + r*9 + d,
		colBand + c*9 + d,
		boxBand + (r/3*3+c/3)*9 + d,
	}
}

// Decode maps a solution's option ids back through mapping into a solved
// 9x9 grid.
func Decode(solution []int, mapping Mapping) [9][9]int {
	var grid [9][9]int
	for _, id := range solution {
		cand := mapping[id]
		grid[cand.Row][cand.Col] = cand.Value
	}
	return grid
}

// ColumnName returns a human-readable label for constraint column idx,
// for matrix introspection and debugging only (mirrors the four bands
// above).
func ColumnName(idx int) string {
	switch {
	case idx < rowBand:
		r, c := idx/9, idx%9
		return fmt.Sprintf("R%dC%d", r, c)
	case idx < colBand:
		i := idx - rowBand
		r, val := i/9, i%9+1
		return fmt.Sprintf("R%d#%d", r, val)
	case idx < boxBand:
		i := idx - colBand
		c, val := i/9, i%9+1
		return fmt.Sprintf("C%d#%d", c, val)
	default:
		i := idx - boxBand
		box, val := i/9, i%9+1
		return fmt.Sprintf("B%d#%d", box, val)
	}
}

// Solve finds the first exact cover for p's grid and, on success, returns
// the solved grid and true. On failure it returns p's grid unchanged and
// false, per the core's (grid, bool) contract; p itself is never mutated.
func Solve(p *puzzle.Puzzle) ([9][9]int, bool, error) {
	m, mapping, err := Encode(p)
	if err != nil {
		return p.ToGrid(), false, err
	}
	solution, found := m.SolveFirst()
	if !found {
		return p.ToGrid(), false, nil
	}
	return Decode(solution, mapping), true, nil
}

// SolveAll enumerates every exact cover of p's grid, decoding each into a
// grid and passing it to sink in the search's deterministic order.
func SolveAll(p *puzzle.Puzzle, sink func([9][9]int)) error {
	m, mapping, err := Encode(p)
	if err != nil {
		return err
	}
	return m.SolveAll(func(sol []int) {
		sink(Decode(sol, mapping))
	})
}

// Package dlx implements an exact cover solver using Knuth's Dancing Links
// technique: a toroidal doubly linked sparse matrix whose columns are
// constraints and whose rows are options, searched by recursive
// backtracking for subsets of rows that cover every column exactly once.
//
// The package knows nothing about any particular reduction (Sudoku, N
// queens, pentominoes, ...); callers build a Matrix from a compressed
// option list and read back option ids from the solutions it finds.
package dlx

import "fmt"

// Node is a single 1-entry in the exact cover matrix: the intersection of
// one option (row) and one constraint (column). Removing a node from its
// rings (unlinking) never touches the node's own four pointers, which is
// what makes reinsertion an O(1) operation with no recorded history.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *Column
	OptionID              int
}

// Column is a constraint header: the sentinel at the top of one column's
// vertical ring. It tracks how many live nodes remain in the column, which
// drives the branching heuristic in selectColumn.
type Column struct {
	Node
	size  int
	Index int // constraint index; -1 for the root sentinel
}

// Size reports the number of options still covering this constraint.
func (c *Column) Size() int { return c.size }

// Matrix is the constructed sparse representation of one exact cover
// problem. It is mutated in place during a search and is safe to reuse for
// further searches once the search that produced a result has returned,
// since SolveFirst/SolveAll always leave it in the state they found it.
//
// A Matrix must not be shared between concurrent searches: cover/uncover
// mutate shared pointer state with no locking, by design: each Matrix has a
// single owning search at a time.
type Matrix struct {
	root    *Column
	columns []*Column
	options int
	arena   []Node // backing storage for every non-header node, allocated once
}

// NumConstraints returns the number of columns the matrix was built with.
func (m *Matrix) NumConstraints() int { return len(m.columns) }

// NumOptions returns the number of options (rows) the matrix was built
// with, including options that contributed no nodes.
func (m *Matrix) NumOptions() int { return m.options }

// InvalidInputError reports a malformed compressed matrix passed to
// BuildMatrix: an out-of-range constraint index or a negative count.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return "dlx: invalid input: " + e.Msg }

// BuildMatrix constructs the toroidal linked structure for a compressed
// exact cover matrix: options is a list of rows, each row the sorted list
// of constraint indices where that option has a 1. Options are assigned
// ids 0..len(options)-1 in order.
func BuildMatrix(options [][]int, numConstraints int) (*Matrix, error) {
	if numConstraints < 0 {
		return nil, &InvalidInputError{Msg: fmt.Sprintf("numConstraints %d is negative", numConstraints)}
	}

	total := 0
	for optID, row := range options {
		for _, idx := range row {
			if idx < 0 || idx >= numConstraints {
				return nil, &InvalidInputError{
					Msg: fmt.Sprintf("option %d references constraint %d, outside [0,%d)", optID, idx, numConstraints),
				}
			}
		}
		total += len(row)
	}

	m := &Matrix{
		root:    &Column{Index: -1},
		columns: make([]*Column, numConstraints),
		options: len(options),
		arena:   make([]Node, total),
	}
	m.root.Left = &m.root.Node
	m.root.Right = &m.root.Node

	for i := range numConstraints {
		col := &Column{Index: i}
		col.Column = col
		col.Up = &col.Node
		col.Down = &col.Node
		m.columns[i] = col

		col.Left = m.root.Left
		col.Right = &m.root.Node
		m.root.Left.Right = &col.Node
		m.root.Left = &col.Node
	}

	next := 0
	for optID, row := range options {
		if len(row) == 0 {
			continue
		}
		rowNodes := make([]*Node, len(row))
		for k, idx := range row {
			n := &m.arena[next]
			next++
			col := m.columns[idx]

			n.Column = col
			n.OptionID = optID

			// Tail-append: the column's vertical ring grows in option
			// order, so iterating down from the header visits rows in
			// the same order they were supplied.
			n.Up = col.Up
			n.Down = &col.Node
			col.Up.Down = n
			col.Up = n
			col.size++

			rowNodes[k] = n
		}

		n := len(rowNodes)
		for k := range rowNodes {
			rowNodes[k].Left = rowNodes[(k-1+n)%n]
			rowNodes[k].Right = rowNodes[(k+1)%n]
		}
	}

	return m, nil
}

// Describe summarizes the matrix, for diagnostics and reporting: how many
// columns and options it was built with, how many nodes are live, and how
// dense the constraint system is.
type Describe struct {
	Columns    int
	Options    int
	LiveNodes  int
	TotalCells int
	Density    float64
}

// Stats computes a Describe snapshot by summing the stored live count of
// every column the matrix was built with.
func (m *Matrix) Stats() Describe {
	d := Describe{Columns: len(m.columns), Options: m.options}
	for _, col := range m.columns {
		d.LiveNodes += col.size
	}
	d.TotalCells = d.Columns * d.Options
	if d.TotalCells > 0 {
		d.Density = float64(d.LiveNodes) / float64(d.TotalCells) * 100.0
	}
	return d
}

package dlx

import "context"

// Hooks are optional instrumentation callbacks invoked during a search.
// A nil field is simply skipped; callers that don't need statistics use
// SolveFirst/SolveAll/CountSolutions, which pass no hooks at all.
type Hooks struct {
	// OnVisit is called once per recursion, including the call that finds
	// (or fails to find) a solution.
	OnVisit func()
	// OnBacktrack is called each time a chosen row's branch has been
	// explored without halting the search, after that row's columns have
	// been uncovered.
	OnBacktrack func()
}

// SolveFirst searches for one exact cover and returns the option ids that
// form it, or (nil, false) if the matrix is unsatisfiable. The matrix is
// restored to its original state before returning either way.
func (m *Matrix) SolveFirst() ([]int, bool) {
	solution, found, _ := m.SolveFirstContext(context.Background())
	return solution, found
}

// SolveFirstContext is SolveFirst with cancellation: ctx is polled at the
// top of every recursion, and an expired context unwinds the partial
// search (restoring every cover it had applied) before returning ctx.Err().
func (m *Matrix) SolveFirstContext(ctx context.Context) ([]int, bool, error) {
	return m.SolveFirstHooks(ctx, nil)
}

// SolveFirstHooks is SolveFirstContext with optional search instrumentation.
func (m *Matrix) SolveFirstHooks(ctx context.Context, hooks *Hooks) ([]int, bool, error) {
	var solution []int
	found := false

	partial := make([]int, 0, 16)
	_, err := search(ctx, m.root, &partial, hooks, func(sol []int) bool {
		solution = append([]int(nil), sol...)
		found = true
		return true
	})
	if err != nil {
		return nil, false, err
	}
	return solution, found, nil
}

// SolveAll invokes sink once for every exact cover the matrix admits, in
// the deterministic order induced by the column selector's tie-break and
// each chosen column's top-to-bottom row order. sink receives its own copy
// of the option-id slice, which it may keep or modify.
func (m *Matrix) SolveAll(sink func([]int)) error {
	return m.SolveAllContext(context.Background(), sink)
}

// SolveAllContext is SolveAll with cancellation, polled the same way as
// SolveFirstContext.
func (m *Matrix) SolveAllContext(ctx context.Context, sink func([]int)) error {
	return m.SolveAllHooks(ctx, nil, sink)
}

// SolveAllHooks is SolveAllContext with optional search instrumentation.
func (m *Matrix) SolveAllHooks(ctx context.Context, hooks *Hooks, sink func([]int)) error {
	partial := make([]int, 0, 16)
	_, err := search(ctx, m.root, &partial, hooks, func(sol []int) bool {
		sink(append([]int(nil), sol...))
		return false
	})
	return err
}

// CountSolutions runs the search to completion (or until max solutions
// have been found, when max > 0) and returns how many exact covers exist,
// without retaining any of them.
func (m *Matrix) CountSolutions(max int) int {
	count := 0
	partial := make([]int, 0, 16)
	search(context.Background(), m.root, &partial, nil, func([]int) bool {
		count++
		return max > 0 && count >= max
	})
	return count
}

// search is the recursive branch-and-bound core of Algorithm X. partial is
// the caller's own accumulator, pushed to and popped from in place across
// the whole recursion tree: it is never a shared default argument reused
// across unrelated calls, only ever a slice owned by the SolveFirst/
// SolveAll/CountSolutions call that created it.
//
// onSolution is called with the current partial solution whenever the
// header ring is empty (every constraint covered exactly once). Returning
// true halts the search entirely; the caller is responsible for copying
// anything it needs out of the slice before returning, since it is
// unwound (and its contents invalidated) as soon as the search returns.
func search(ctx context.Context, root *Column, partial *[]int, hooks *Hooks, onSolution func([]int) bool) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if hooks != nil && hooks.OnVisit != nil {
		hooks.OnVisit()
	}

	if root.Right == &root.Node {
		return onSolution(*partial), nil
	}

	col := selectColumn(root)
	if col.size == 0 {
		return false, nil
	}

	cover(col)
	for r := col.Down; r != &col.Node; r = r.Down {
		*partial = append(*partial, r.OptionID)
		for j := r.Right; j != r; j = j.Right {
			cover(j.Column)
		}

		halt, err := search(ctx, root, partial, hooks, onSolution)

		for j := r.Left; j != r; j = j.Left {
			uncover(j.Column)
		}
		*partial = (*partial)[:len(*partial)-1]

		if err != nil || halt {
			uncover(col)
			return halt, err
		}

		if hooks != nil && hooks.OnBacktrack != nil {
			hooks.OnBacktrack()
		}
	}

	uncover(col)
	return false, nil
}

// Package solver is the high-level Sudoku driver: it wires the generic
// package dlx search to package sudoku's exact cover reduction, and adds
// the operational layer a command-line tool needs on top of a bare
// solve — time limits, progress statistics, and formatted reporting.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/dlx/internal/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
	"github.com/kpitt/dlx/internal/sudoku"
)

// Options configures a single solve.
type Options struct {
	EnableDebugging bool
	TimeLimit       time.Duration
	MaxSolutions    int
}

// DefaultOptions returns sensible defaults: no debug tracing, a 10 second
// time limit, and a single solution.
func DefaultOptions() *Options {
	return &Options{
		EnableDebugging: false,
		TimeLimit:       10 * time.Second,
		MaxSolutions:    1,
	}
}

// Stats tracks search progress for one solve, for reporting after the
// fact.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	Matrix         dlx.Describe
}

// Solve runs a single solve of p under options, returning the solved grid
// and search statistics. A nil options uses DefaultOptions.
func Solve(p *puzzle.Puzzle, options *Options) ([9][9]int, bool, *Stats, error) {
	if options == nil {
		options = DefaultOptions()
	}

	m, mapping, err := sudoku.Encode(p)
	if err != nil {
		return p.ToGrid(), false, nil, err
	}

	stats := &Stats{Matrix: m.Stats()}
	hooks := &dlx.Hooks{
		OnVisit:     func() { stats.NodesVisited++ },
		OnBacktrack: func() { stats.BacktrackCount++ },
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if options.TimeLimit > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.TimeLimit)
		defer cancel()
	}

	start := time.Now()
	solution, found, err := m.SolveFirstHooks(ctx, hooks)
	stats.TimeElapsed = time.Since(start)
	if err != nil {
		return p.ToGrid(), false, stats, err
	}
	if !found {
		return p.ToGrid(), false, stats, nil
	}
	stats.SolutionsFound = 1

	if options.EnableDebugging {
		fmt.Printf("solved in %d nodes visited, %d backtracks\n", stats.NodesVisited, stats.BacktrackCount)
	}

	return sudoku.Decode(solution, mapping), true, stats, nil
}

// PrintStats displays solving statistics in a formatted way.
func (stats *Stats) PrintStats() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	fmt.Printf("Matrix Info:\n")
	fmt.Printf("  Columns:     %s\n", color.HiYellowString("%d", stats.Matrix.Columns))
	fmt.Printf("  Options:     %s\n", color.HiYellowString("%d", stats.Matrix.Options))
	fmt.Printf("  Live Nodes:  %s\n", color.HiYellowString("%d", stats.Matrix.LiveNodes))
	fmt.Printf("  Density:     %s\n", color.HiYellowString("%.2f%%", stats.Matrix.Density))

	fmt.Printf("\nSearch Statistics:\n")
	fmt.Printf("  Nodes Visited:   %s\n", color.HiGreenString("%d", stats.NodesVisited))
	fmt.Printf("  Backtracks:      %s\n", color.HiRedString("%d", stats.BacktrackCount))
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", stats.SolutionsFound))
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", stats.TimeElapsed))

	if stats.TimeElapsed.Nanoseconds() > 0 {
		nodesPerSec := float64(stats.NodesVisited) / stats.TimeElapsed.Seconds()
		fmt.Printf("  Nodes/Second:    %s\n", color.HiMagentaString("%.0f", nodesPerSec))
	}
}

// PrintMatrix prints a short introspection summary of p's encoded matrix,
// naming columns with package sudoku's labels (for debugging only).
func PrintMatrix(p *puzzle.Puzzle) error {
	m, _, err := sudoku.Encode(p)
	if err != nil {
		return err
	}
	d := m.Stats()

	fmt.Printf("\n%s\n", color.HiCyanString("Constraint Matrix Structure"))
	fmt.Printf("%s\n", color.HiCyanString("==========================="))
	fmt.Printf("Columns: %d (", d.Columns)
	for i := range min(10, d.Columns) {
		fmt.Printf("%s ", color.HiYellowString(sudoku.ColumnName(i)))
	}
	if d.Columns > 10 {
		fmt.Printf("... %d more", d.Columns-10)
	}
	fmt.Println(")")
	fmt.Printf("Options: %d, Live Nodes: %d, Density: %.2f%%\n", d.Options, d.LiveNodes, d.Density)
	return nil
}

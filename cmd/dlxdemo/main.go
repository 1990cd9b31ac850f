// Command dlxdemo demonstrates the dlx package directly (bypassing the
// Sudoku reduction entirely) on the classic 7-constraint, 6-option exact
// cover example, and then shows the full Sudoku pipeline solving and
// reporting statistics on a sample puzzle.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/dlx/internal/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
	"github.com/kpitt/dlx/internal/solver"
	"github.com/kpitt/dlx/internal/sudoku"
)

func main() {
	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	demoWikipediaExample()
	demoSudoku()
	demonstrateAlgorithmDetails()
}

// demoWikipediaExample builds the matrix straight from a compressed
// options list, with no domain reduction involved: options A-F over
// constraints 0-6, the textbook example with exactly one exact cover
// {B, D, F} = options 1, 3, 5.
func demoWikipediaExample() {
	fmt.Printf("\n%s\n", color.HiBlueString("Generic exact cover (the Wikipedia example)"))

	labels := []string{"A", "B", "C", "D", "E", "F"}
	options := [][]int{
		{0, 3, 6},
		{0, 3},
		{3, 4, 6},
		{2, 4, 5},
		{1, 2, 5, 6},
		{1, 6},
	}

	m, err := dlx.BuildMatrix(options, 7)
	if err != nil {
		fmt.Println(color.HiRedString("build failed: %v", err))
		return
	}

	d := m.Stats()
	fmt.Printf("matrix: %d columns, %d options, %d live nodes, %.1f%% density\n",
		d.Columns, d.Options, d.LiveNodes, d.Density)

	solution, found := m.SolveFirst()
	if !found {
		fmt.Println(color.HiRedString("no exact cover exists"))
		return
	}
	names := make([]string, len(solution))
	for i, id := range solution {
		names[i] = labels[id]
	}
	fmt.Printf("%s %v\n", color.HiGreenString("exact cover:"), names)
}

func demoSudoku() {
	fmt.Printf("\n%s\n", color.HiBlueString("Sudoku reduction"))

	givens := [9][9]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	p := puzzle.FromGrid(givens)

	fmt.Println(color.HiYellowString("Original:"))
	p.Print()

	start := time.Now()
	grid, found, stats, err := solver.Solve(p, solver.DefaultOptions())
	duration := time.Since(start)
	if err != nil {
		fmt.Println(color.HiRedString("solve error: %v", err))
		return
	}
	if !found {
		fmt.Printf("%s (%v)\n", color.HiRedString("no solution found"), duration)
		return
	}

	fmt.Printf("%s (%v)\n", color.HiGreenString("solved"), duration)
	result := puzzle.FromGrid(grid)
	result.Print()

	if err := sudoku.Verify(grid); err != nil {
		fmt.Println(color.HiRedString("solution failed verification: %v", err))
	} else {
		fmt.Println(color.HiGreenString("solution verified"))
	}

	stats.PrintStats()
}

func demonstrateAlgorithmDetails() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Algorithm Details"))
	fmt.Println(color.HiCyanString("================================"))

	fmt.Println("\nDancing Links (Algorithm X) solves the exact cover problem: given a")
	fmt.Println("universe of constraints and a collection of options, find a subset of")
	fmt.Println("options that covers every constraint exactly once.")

	fmt.Printf("\n%s\n", color.HiYellowString("Sudoku as exact cover:"))
	fmt.Println("   • 324 columns: 81 cell + 81 row-digit + 81 col-digit + 81 box-digit")
	fmt.Println("   • up to 729 options: one per (row, col, digit) candidate placement")
	fmt.Println("   • each option touches exactly 4 columns, one per constraint band")

	fmt.Printf("\n%s\n", color.HiYellowString("Core operations:"))
	fmt.Println("   • cover:   remove a column and every option intersecting it")
	fmt.Println("   • uncover: restore them in reverse order during backtracking")
	fmt.Println("   • select:  branch on the live column with fewest remaining options")
}

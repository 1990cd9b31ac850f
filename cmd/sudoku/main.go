package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/dlx/internal/puzzle"
	"github.com/kpitt/dlx/internal/solver"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	p := puzzle.PuzzleFromFile(os.Stdin)
	grid, found, stats, err := solver.Solve(p, solver.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if found {
		color.HiWhite("\nSolution:")
		result := puzzle.FromGrid(grid)
		result.Print()
	} else {
		color.HiWhite("\nNo solution found.")
		p.Print()
		fmt.Println()
		p.PrintUnsolvedCounts()
	}

	stats.PrintStats()
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Command dlxbench batch-solves puzzles read from a CSV file (one
// "puzzle,solution" pair per row, each an 81-character row-major digit
// string) and reports per-puzzle and aggregate timing, verifying every
// solution it finds against the expected answer.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/dlx/internal/puzzle"
	"github.com/kpitt/dlx/internal/solver"
	"github.com/kpitt/dlx/internal/sudoku"
)

func main() {
	path := flag.String("csv", "", "path to a puzzles CSV file (header + puzzle,solution rows)")
	limit := flag.Int("limit", 100, "maximum number of puzzles to solve (0 for no limit)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: dlxbench -csv <path> [-limit N]")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	entries, err := puzzle.ReadPuzzlesCSV(f, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d puzzles from %s\n", len(entries), *path)

	times := make([]time.Duration, 0, len(entries))
	for i, entry := range entries {
		start := time.Now()
		grid, found, _, err := solver.Solve(entry.Puzzle, solver.DefaultOptions())
		elapsed := time.Since(start)
		times = append(times, elapsed)

		if err != nil {
			fmt.Printf("[%d] %s: %v\n", i, color.HiRedString("error"), err)
			continue
		}
		if !found {
			fmt.Printf("[%d] %s in %v\n", i, color.HiRedString("no solution"), elapsed)
			continue
		}
		if err := sudoku.Verify(grid); err != nil {
			fmt.Printf("[%d] %s in %v: %v\n", i, color.HiRedString("verification failed"), elapsed, err)
			continue
		}
		if grid != entry.Solution {
			fmt.Printf("[%d] %s in %v\n", i, color.HiRedString("solution mismatch"), elapsed)
			continue
		}
		fmt.Printf("[%d] %s in %v\n", i, color.HiGreenString("solved"), elapsed)
	}

	printSummary(times)
}

func printSummary(times []time.Duration) {
	if len(times) == 0 {
		fmt.Println("no puzzles timed")
		return
	}

	sorted := append([]time.Duration(nil), times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	mean := total / time.Duration(len(sorted))
	median := sorted[len(sorted)/2]

	fmt.Printf("\n%s\n", color.HiCyanString("Timing Summary"))
	fmt.Printf("  Mean:   %v\n", mean)
	fmt.Printf("  Median: %v\n", median)
	fmt.Printf("  Min:    %v\n", sorted[0])
	fmt.Printf("  Max:    %v\n", sorted[len(sorted)-1])
}

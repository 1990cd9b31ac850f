package sudoku

import "fmt"

// Verify reports whether grid is a complete, valid Sudoku solution: every
// cell filled 1-9, and every row, column, and 3x3 box containing each
// digit exactly once.
func Verify(grid [9][9]int) error {
	for r := range 9 {
		seen := make(map[int]bool, 9)
		for c := range 9 {
			val := grid[r][c]
			if val < 1 || val > 9 {
				return fmt.Errorf("sudoku: invalid value %d at (%d,%d)", val, r, c)
			}
			if seen[val] {
				return fmt.Errorf("sudoku: duplicate value %d in row %d", val, r)
			}
			seen[val] = true
		}
	}

	for c := range 9 {
		seen := make(map[int]bool, 9)
		for r := range 9 {
			val := grid[r][c]
			if seen[val] {
				return fmt.Errorf("sudoku: duplicate value %d in column %d", val, c)
			}
			seen[val] = true
		}
	}

	for box := range 9 {
		seen := make(map[int]bool, 9)
		boxRow, boxCol := box/3, box%3
		for i := range 9 {
			r, c := boxRow*3+i/3, boxCol*3+i%3
			val := grid[r][c]
			if seen[val] {
				return fmt.Errorf("sudoku: duplicate value %d in box %d", val, box)
			}
			seen[val] = true
		}
	}

	return nil
}

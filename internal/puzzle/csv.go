package puzzle

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVEntry is one puzzle/solution pair read from a benchmark CSV file.
type CSVEntry struct {
	Puzzle   *Puzzle
	Solution [9][9]int
}

// ReadPuzzlesCSV reads up to limit puzzles from a CSV stream with a header
// row followed by "puzzle,solution" rows, where each of puzzle and
// solution is an 81-character string of digits (0 for a blank cell) in
// row-major order. A limit of 0 means no limit.
func ReadPuzzlesCSV(r io.Reader, limit int) ([]CSVEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("puzzle: empty csv input")
		}
		return nil, fmt.Errorf("puzzle: reading csv header: %w", err)
	}

	var entries []CSVEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("puzzle: reading csv row: %w", err)
		}

		grid, err := parseGridString(record[0])
		if err != nil {
			return nil, fmt.Errorf("puzzle: parsing puzzle column: %w", err)
		}
		solution, err := parseGridString(record[1])
		if err != nil {
			return nil, fmt.Errorf("puzzle: parsing solution column: %w", err)
		}

		entries = append(entries, CSVEntry{Puzzle: FromGrid(grid), Solution: solution})
		if limit > 0 && len(entries) >= limit {
			break
		}
	}

	return entries, nil
}

// parseGridString decodes an 81-character row-major digit string into a
// 9x9 grid.
func parseGridString(s string) ([9][9]int, error) {
	var grid [9][9]int
	if len(s) != 81 {
		return grid, fmt.Errorf("expected 81 characters, got %d", len(s))
	}
	for i := range 81 {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return grid, fmt.Errorf("non-digit character %q at position %d", ch, i)
		}
		grid[i/9][i%9] = int(ch - '0')
	}
	return grid, nil
}

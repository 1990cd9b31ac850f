package dlx

// cover removes a column and every row that intersects it from the
// matrix, in O(rows * cols-in-rows). The column's own node and every
// removed node keep their original neighbor pointers intact, so uncover
// can restore them without having recorded anything.
func cover(col *Column) {
	col.Right.Left = col.Left
	col.Left.Right = col.Right

	for r := col.Down; r != &col.Node; r = r.Down {
		for j := r.Right; j != r; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.size--
		}
	}
}

// uncover is the exact inverse of cover, run in reverse order: restoring
// rows bottom-to-top and, within each row, right-to-left. Any other order
// leaves the link structure corrupt.
func uncover(col *Column) {
	for r := col.Up; r != &col.Node; r = r.Up {
		for j := r.Left; j != r; j = j.Left {
			j.Column.size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	col.Right.Left = &col.Node
	col.Left.Right = &col.Node
}

// selectColumn walks the header ring and returns the live column with the
// fewest remaining nodes (the S-heuristic), breaking ties in favor of the
// earliest-encountered column. It returns early the moment it finds a
// column with zero nodes, since no branch through an empty column can
// possibly succeed.
func selectColumn(root *Column) *Column {
	chosen := root.Right.Column
	minSize := chosen.size
	if minSize == 0 {
		return chosen
	}
	for col := root.Right; col != &root.Node; col = col.Right {
		c := col.Column
		if c.size < minSize {
			chosen = c
			minSize = c.size
			if minSize == 0 {
				break
			}
		}
	}
	return chosen
}

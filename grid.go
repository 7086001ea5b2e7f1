package identicon

// Cell is one grid position paired with the digest byte that produced it.
// Index is the 0-based row-major position in the 5-wide grid; it is fixed
// at grid construction and filtering never renumbers surviving cells.
type Cell struct {
	Value byte
	Index int
}

const rowBytes = 3

// buildGrid partitions hex into consecutive groups of three bytes,
// mirrors each group [a,b,c] into the row [a,b,c,b,a] and tags every
// element with its index in the concatenated sequence. A trailing group
// of fewer than three bytes is discarded, so a digest shorter than three
// bytes legally yields an empty grid.
func buildGrid(hex []byte) []Cell {
	cells := make([]Cell, 0, len(hex)/rowBytes*5)
	for i := 0; i+rowBytes <= len(hex); i += rowBytes {
		row := [5]byte{hex[i], hex[i+1], hex[i+2], hex[i+1], hex[i]}
		for _, v := range row {
			cells = append(cells, Cell{Value: v, Index: len(cells)})
		}
	}
	return cells
}

// filterOdd returns the cells holding even values, preserving both their
// relative order and their index values. Zero survivors is legal.
func filterOdd(cells []Cell) []Cell {
	even := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Value%2 == 0 {
			even = append(even, c)
		}
	}
	return even
}

package entities

// Rectangle is a positive-integer width by height board extent. The
// board's cell set is {(x, y) : 0 <= x < Width, 0 <= y < Height}.
type Rectangle struct {
	Width, Height int
}

// Cells returns Width*Height, the total number of cells on the board.
func (r Rectangle) Cells() int {
	return r.Width * r.Height
}

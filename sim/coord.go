package sim

// Coord is an integer cell position. X runs along the sidewalk, Y across it.
type Coord struct {
	X, Y int
}

// Add returns c displaced by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Distance returns the Manhattan distance between c and o.
func (c Coord) Distance(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Clamp pulls c inside [0, length-1] x [0, width-1].
func (c Coord) Clamp(length, width int) Coord {
	return Coord{X: clamp(c.X, 0, length-1), Y: clamp(c.Y, 0, width-1)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	return max(min(v, hi), lo)
}

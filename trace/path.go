package trace

// Path is an ordered sequence of cells.
type Path []Point

// Rows returns the row index of every point, in order.
func (p Path) Rows() []int {
	out := make([]int, len(p))
	for i, pt := range p {
		out[i] = pt.Row
	}
	return out
}

// Cols returns the column index of every point, in order.
func (p Path) Cols() []int {
	out := make([]int, len(p))
	for i, pt := range p {
		out[i] = pt.Col
	}
	return out
}

// Decimate keeps the first point and every k-th point after it.
// k ≤ 1 returns a copy of p.
func (p Path) Decimate(k int) Path {
	if k < 1 {
		k = 1
	}
	out := make(Path, 0, (len(p)+k-1)/k)
	for i := 0; i < len(p); i += k {
		out = append(out, p[i])
	}
	return out
}

// Contains reports whether pt is on the path. O(len(p)).
func (p Path) Contains(pt Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

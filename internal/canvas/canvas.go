// Package canvas maps simulation coordinates onto drawing surfaces.
//
// Simulation space is the square [-1,1]×[-1,1] with y pointing up. Drawing
// surfaces put the origin at the top-left corner with y pointing down, so the
// y axis is inverted: (-1, 1) maps to (0, 0) and (1, -1) to (width, height).
package canvas

// Transform maps simulation coordinates onto a surface of the given size.
type Transform struct {
	Width  float64
	Height float64
}

// New returns a Transform for a width×height surface.
func New(width, height float64) Transform {
	return Transform{Width: width, Height: height}
}

// ToCanvas converts a simulation point to surface coordinates.
func (t Transform) ToCanvas(x, y float64) (cx, cy float64) {
	cx = (x + 1) * t.Width / 2
	cy = (1 - y) * t.Height / 2
	return cx, cy
}

// Center returns the surface coordinates of the simulation origin.
func (t Transform) Center() (cx, cy float64) {
	return t.ToCanvas(0, 0)
}

// Radius returns the horizontal and vertical radii of the unit circle on the
// surface.
func (t Transform) Radius() (rx, ry float64) {
	return t.Width / 2, t.Height / 2
}

// Cell maps a simulation point onto a cols×rows character grid.
// Points on the right or bottom edge land in the last column or row.
func Cell(x, y float64, cols, rows int) (col, row int) {
	cx, cy := New(float64(cols), float64(rows)).ToCanvas(x, y)
	return clamp(int(cx), cols), clamp(int(cy), rows)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

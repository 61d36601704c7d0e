package estimator

// Point is one classified sample.
type Point struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Inside bool    `json:"inside" yaml:"inside"`
}

// Classify reports whether (x, y) lies inside or on the unit circle.
// It compares the squared distance, so no square root is taken.
func Classify(x, y float64) bool {
	return x*x+y*y <= 1
}

// NewPoint builds a classified Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Inside: Classify(x, y)}
}

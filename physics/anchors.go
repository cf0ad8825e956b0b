package physics

import "math"

// Point is a world-space coordinate pair.
type Point struct {
	X, Y float64
}

// ComponentAnchors returns one target point per connected component, laid
// out on a grid centered at the origin with cells of the given spacing.
// Component index alone determines the anchor, so identical inputs always
// yield the identical sequence.
func ComponentAnchors(componentCount int, spacing float64) []Point {
	if componentCount <= 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(componentCount))))
	rows := (componentCount + cols - 1) / cols

	anchors := make([]Point, componentCount)
	for i := range anchors {
		col := i % cols
		row := i / cols
		anchors[i] = Point{
			X: (float64(col) - float64(cols-1)/2) * spacing,
			Y: (float64(row) - float64(rows-1)/2) * spacing,
		}
	}
	return anchors
}

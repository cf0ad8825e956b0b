package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentAnchorsDeterministic(t *testing.T) {
	a := ComponentAnchors(7, 120)
	b := ComponentAnchors(7, 120)
	assert.Equal(t, a, b)
}

func TestComponentAnchorsSpacing(t *testing.T) {
	for _, count := range []int{1, 2, 3, 5, 9, 16, 23} {
		anchors := ComponentAnchors(count, 100)
		assert.Len(t, anchors, count)
		for i := 0; i < len(anchors); i++ {
			for j := i + 1; j < len(anchors); j++ {
				dx := anchors[i].X - anchors[j].X
				dy := anchors[i].Y - anchors[j].Y
				d := math.Sqrt(dx*dx + dy*dy)
				assert.GreaterOrEqual(t, d, 100.0-1e-9,
					"anchors %d and %d too close for count %d", i, j, count)
			}
		}
	}
}

func TestComponentAnchorsEmpty(t *testing.T) {
	assert.Nil(t, ComponentAnchors(0, 100))
	assert.Nil(t, ComponentAnchors(-1, 100))
}

func TestComponentAnchorsCentered(t *testing.T) {
	anchors := ComponentAnchors(4, 100)
	var sx, sy float64
	for _, a := range anchors {
		sx += a.X
		sy += a.Y
	}
	assert.InDelta(t, 0, sx, 1e-9)
	assert.InDelta(t, 0, sy, 1e-9)
}

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraIdentityCentersOrigin(t *testing.T) {
	cam := NewCamera()
	sx, sy := cam.WorldToScreen(0, 0, 800, 600)
	assert.Equal(t, 400.0, sx)
	assert.Equal(t, 300.0, sy)

	wx, wy := cam.ScreenToWorld(400, 300, 800, 600)
	assert.Equal(t, 0.0, wx)
	assert.Equal(t, 0.0, wy)
}

func TestCameraRoundTrip(t *testing.T) {
	cases := []Camera{
		{Zoom: 1},
		{X: 120, Y: -45, Zoom: 1},
		{X: -30, Y: 80, Zoom: 2.5},
		{X: 5, Y: 5, Zoom: 0.4},
	}
	for _, cam := range cases {
		for _, pt := range [][2]float64{{0, 0}, {123.5, -77.25}, {-400, 300}} {
			sx, sy := cam.WorldToScreen(pt[0], pt[1], 1024, 768)
			wx, wy := cam.ScreenToWorld(sx, sy, 1024, 768)
			assert.InDelta(t, pt[0], wx, 1e-9)
			assert.InDelta(t, pt[1], wy, 1e-9)
		}
	}
}

func TestCameraZeroValueRoundTrips(t *testing.T) {
	var cam Camera // zero Zoom reads as 1 in both directions
	sx, sy := cam.WorldToScreen(25, -40, 800, 600)
	assert.Equal(t, 425.0, sx)
	assert.Equal(t, 260.0, sy)

	wx, wy := cam.ScreenToWorld(sx, sy, 800, 600)
	assert.Equal(t, 25.0, wx)
	assert.Equal(t, -40.0, wy)
}

func TestCameraZoomScalesAboutCenter(t *testing.T) {
	cam := Camera{Zoom: 2}
	sx, sy := cam.WorldToScreen(10, 0, 800, 600)
	assert.Equal(t, 420.0, sx)
	assert.Equal(t, 300.0, sy)
}

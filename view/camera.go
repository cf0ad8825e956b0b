// Package view maps the world-space model onto the screen: camera
// transform, hit-testing, and drawing.
package view

// Camera is a similarity transform from world to screen space. The viewer
// holds it at the identity-like default (origin centered, zoom 1), but the
// transforms are general.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera centered on the world origin at zoom 1.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// WorldToScreen maps a world point to screen pixels for a viewport of the
// given size. A zero Zoom is read as 1, matching ScreenToWorld, so a
// zero-valued Camera still round-trips.
func (c Camera) WorldToScreen(wx, wy, width, height float64) (float64, float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return (wx-c.X)*zoom + width/2, (wy-c.Y)*zoom + height/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c Camera) ScreenToWorld(sx, sy, width, height float64) (float64, float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return (sx-width/2)/zoom + c.X, (sy-height/2)/zoom + c.Y
}

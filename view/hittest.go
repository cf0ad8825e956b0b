package view

import (
	"github.com/quantboard/graphview/graph"
)

// HitTestNode returns the node whose circle contains the given screen
// point, or nil. Nodes later in the model sequence draw on top, so the scan
// runs back to front and the topmost hit wins — consistent with what the
// user sees.
func HitTestNode(m *graph.Model, cam Camera, sx, sy, width, height, nodeSize float64) *graph.Node {
	if m == nil {
		return nil
	}
	wx, wy := cam.ScreenToWorld(sx, sy, width, height)
	for i := len(m.Nodes) - 1; i >= 0; i-- {
		n := m.Nodes[i]
		r := n.Radius
		if r <= 0 {
			r = nodeSize / 2
		}
		dx := wx - n.X
		dy := wy - n.Y
		if dx*dx+dy*dy <= r*r {
			return n
		}
	}
	return nil
}

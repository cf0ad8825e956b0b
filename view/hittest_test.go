package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantboard/graphview/graph"
)

func hitModel() *graph.Model {
	m := graph.NewModel()
	m.AddNode(&graph.Node{ID: "a", X: 0, Y: 0, Radius: 10})
	m.AddNode(&graph.Node{ID: "far", X: 200, Y: 200, Radius: 10})
	return m
}

func TestHitTestNodeCenterAlwaysHits(t *testing.T) {
	m := hitModel()
	cam := NewCamera()

	// World origin is screen center at identity.
	n := HitTestNode(m, cam, 400, 300, 800, 600, 20)
	require.NotNil(t, n)
	assert.Equal(t, "a", n.ID)
}

func TestHitTestNodeMissesOutsideRadius(t *testing.T) {
	m := hitModel()
	cam := NewCamera()

	n := HitTestNode(m, cam, 400+11, 300, 800, 600, 20)
	assert.Nil(t, n)
}

func TestHitTestNodeTopmostWins(t *testing.T) {
	m := graph.NewModel()
	m.AddNode(&graph.Node{ID: "under", X: 0, Y: 0, Radius: 10})
	m.AddNode(&graph.Node{ID: "over", X: 3, Y: 0, Radius: 10})
	cam := NewCamera()

	// Point inside both circles: the later-drawn node wins.
	n := HitTestNode(m, cam, 401, 300, 800, 600, 20)
	require.NotNil(t, n)
	assert.Equal(t, "over", n.ID)
}

func TestHitTestNodeUsesDisplaySizeFallback(t *testing.T) {
	m := graph.NewModel()
	m.AddNode(&graph.Node{ID: "a", X: 0, Y: 0}) // no radius of its own
	cam := NewCamera()

	assert.NotNil(t, HitTestNode(m, cam, 404, 300, 800, 600, 10))
	assert.Nil(t, HitTestNode(m, cam, 406, 300, 800, 600, 10))
}

func TestHitTestNodeRespectsCamera(t *testing.T) {
	m := hitModel()
	cam := Camera{X: 200, Y: 200, Zoom: 2}

	// Node "far" sits at the camera target, so it lands on screen center.
	n := HitTestNode(m, cam, 400, 300, 800, 600, 20)
	require.NotNil(t, n)
	assert.Equal(t, "far", n.ID)
}

func TestHitTestNilModel(t *testing.T) {
	assert.Nil(t, HitTestNode(nil, NewCamera(), 0, 0, 800, 600, 20))
}

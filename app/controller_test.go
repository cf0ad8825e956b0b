package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantboard/graphview/graph"
)

// newTestState builds a two-node state with deterministic positions: "a" at
// the world origin (screen center), "b" far off to the side.
func newTestState(t *testing.T) *SimulationState {
	t.Helper()
	metrics := []graph.Record{{ID: "a", Name: "alpha"}}
	rules := []graph.Record{{ID: "b", Name: "beta", Deps: []string{"alpha"}}}
	s := NewSimulationState(metrics, rules, 80, 800, 600, nil)
	require.NotNil(t, s.Model.NodeByID("a"))
	s.Model.NodeByID("a").X, s.Model.NodeByID("a").Y = 0, 0
	s.Model.NodeByID("b").X, s.Model.NodeByID("b").Y = 150, 150
	return s
}

func sleepEngine(t *testing.T, s *SimulationState) {
	t.Helper()
	for i := 0; i < 20000; i++ {
		s.Advance(1)
		if s.Engine.Asleep() {
			return
		}
	}
	t.Fatal("engine never slept")
}

func TestDragPinsMovesAndReleases(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})
	a := s.Model.NodeByID("a")

	// Screen center hits node "a" at identity camera.
	c.PointerDown(s, 400, 300)
	assert.True(t, a.Pinned)
	assert.Equal(t, 0.0, a.PinX)
	assert.False(t, s.Engine.Asleep())

	c.PointerMove(s, 450, 360)
	assert.True(t, a.Pinned)
	assert.InDelta(t, 50, a.PinX, 1e-9)
	assert.InDelta(t, 60, a.PinY, 1e-9)

	c.PointerUp(s, 450, 360)
	assert.False(t, a.Pinned, "pin cleared on release")
	assert.Equal(t, "dragEnd", s.Engine.LastSettleReason())
	assert.Empty(t, c.SelectedID(), "a drag is not a click")
}

func TestDragUsesGrabOffset(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})
	a := s.Model.NodeByID("a")

	// Grab 5px right of center; the node must not jump under the pointer.
	c.PointerDown(s, 405, 300)
	c.PointerMove(s, 455, 300)
	assert.InDelta(t, 50, a.PinX, 1e-9, "offset preserved")

	c.PointerUp(s, 455, 300)
}

func TestDragRetargetsHover(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})

	// Hover node "b", then grab node "a": the ring must not stay on "b".
	bx, by := s.Camera.WorldToScreen(150, 150, s.Width, s.Height)
	c.PointerMove(s, bx, by)
	require.Equal(t, "b", c.HoveredID())

	c.PointerDown(s, 400, 300)
	assert.Equal(t, "a", c.HoveredID())

	c.PointerMove(s, 460, 300)
	assert.Equal(t, "a", c.HoveredID(), "hover pinned to the dragged node")
	c.PointerUp(s, 460, 300)
}

func TestClickTogglesSelection(t *testing.T) {
	s := newTestState(t)
	var selections []string
	c := NewController(Hooks{OnSelect: func(id string) { selections = append(selections, id) }})

	c.PointerDown(s, 400, 300)
	c.PointerUp(s, 400, 300)
	assert.Equal(t, "a", c.SelectedID())

	c.PointerDown(s, 400, 300)
	c.PointerUp(s, 400, 300)
	assert.Empty(t, c.SelectedID(), "second click deselects")

	assert.Equal(t, []string{"a", ""}, selections)
}

func TestClickOnEmptySpaceClearsSelection(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})

	c.PointerDown(s, 400, 300)
	c.PointerUp(s, 400, 300)
	require.Equal(t, "a", c.SelectedID())

	c.PointerDown(s, 100, 500)
	c.PointerUp(s, 100, 500)
	assert.Empty(t, c.SelectedID())
}

func TestHoverDoesNotWakeEngine(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})
	sleepEngine(t, s)

	// Hover over wherever node "a" settled.
	a := s.Model.NodeByID("a")
	sx, sy := s.Camera.WorldToScreen(a.X, a.Y, s.Width, s.Height)
	c.PointerMove(s, sx, sy)

	assert.Equal(t, "a", c.HoveredID())
	assert.True(t, s.Engine.Asleep(), "hover must not wake the engine")

	c.PointerMove(s, 10, 10)
	assert.Empty(t, c.HoveredID())
}

func TestDragKeepsEngineAwake(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})
	sleepEngine(t, s)

	a := s.Model.NodeByID("a")
	sx, sy := s.Camera.WorldToScreen(a.X, a.Y, s.Width, s.Height)
	c.PointerDown(s, sx, sy)
	assert.False(t, s.Engine.Asleep())

	for i := 0; i < 100; i++ {
		c.PointerMove(s, sx+float64(i), sy)
		assert.False(t, s.Engine.Asleep(), "each move re-wakes the engine")
		s.Advance(1)
	}
	c.PointerUp(s, sx+99, sy)
	assert.Equal(t, "dragEnd", s.Engine.LastSettleReason())
}

func TestDraggedNodeRemovedMidDrag(t *testing.T) {
	s := newTestState(t)
	c := NewController(Hooks{})

	c.PointerDown(s, 400, 300)
	s.RemoveNode("a")
	c.PointerMove(s, 420, 300) // must not panic
	c.PointerUp(s, 420, 300)
	assert.Empty(t, c.SelectedID())
}

func TestStructuralEditsWakeAndReheat(t *testing.T) {
	s := newTestState(t)
	sleepEngine(t, s)

	s.AddNode(graph.Record{ID: "c", Name: "gamma"}, graph.KindRule)
	assert.False(t, s.Engine.Asleep())
	assert.NotNil(t, s.Model.NodeByID("c"))

	sleepEngine(t, s)
	s.RemoveNode("c")
	assert.False(t, s.Engine.Asleep())
	assert.Nil(t, s.Model.NodeByID("c"))
}

func TestRenameWakesEngine(t *testing.T) {
	s := newTestState(t)
	sleepEngine(t, s)

	s.UpdateNode("a", "renamed")

	assert.False(t, s.Engine.Asleep(), "rename is a structural edit and must wake")
	assert.Equal(t, "renamed", s.Model.NodeByID("a").Name)

	// Renaming a missing node stays a no-op: no wake, no reheat.
	sleepEngine(t, s)
	s.UpdateNode("ghost", "x")
	assert.True(t, s.Engine.Asleep())
}

func TestRemoveNodeKeepsAnchorsInRange(t *testing.T) {
	s := newTestState(t)
	// Removing "a" leaves "b" alone in component 0; stepping right after
	// must stay in bounds even though the component count changed.
	s.RemoveNode("a")
	require.Equal(t, 1, s.Model.ComponentCount)
	for i := 0; i < 100; i++ {
		s.Advance(1)
	}
}

func TestEditDeleteHooks(t *testing.T) {
	var edited, deleted string
	c := NewController(Hooks{
		OnEdit:   func(id string) { edited = id },
		OnDelete: func(id string) { deleted = id },
	})
	c.RequestEdit("a")
	c.RequestDelete("b")
	assert.Equal(t, "a", edited)
	assert.Equal(t, "b", deleted)

	c.RequestEdit("") // nil-safe no-ops
	NewController(Hooks{}).RequestDelete("x")
}

func TestSetRecordsSwapsModelKeepsEngine(t *testing.T) {
	s := newTestState(t)
	engine := s.Engine

	s.SetRecords([]graph.Record{{ID: "only", Name: "only"}}, nil)

	assert.Same(t, engine, s.Engine, "engine instance survives data changes")
	assert.Len(t, s.Model.Nodes, 1)
	assert.Equal(t, "data changed", s.Engine.LastSettleReason())
}

func TestSetNodeGapRescalesParams(t *testing.T) {
	s := newTestState(t)
	before := s.Params.RepulsionRadius

	s.SetNodeGap(160)

	assert.Greater(t, s.Params.RepulsionRadius, before)
	assert.Equal(t, "parameter changed", s.Engine.LastSettleReason())

	s.SetNodeGap(0) // ignored
	assert.Equal(t, 160.0, s.NodeGap)
}

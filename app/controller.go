package app

import (
	"github.com/quantboard/graphview/view"
)

// Pointer travel in screen pixels below which a press/release pair still
// counts as a click.
const clickSlop = 3.0

// Hooks are the host-facing callbacks for interactions that leave the core:
// selection for a details panel, edit/delete intents for the CRUD layer.
// Any of them may be nil.
type Hooks struct {
	OnSelect func(id string) // id == "" means selection cleared
	OnEdit   func(id string)
	OnDelete func(id string)
}

// Controller is the pointer state machine: idle with hover tracking, or
// dragging one pinned node. It owns selection and hover, mutates pins on
// the model, and nudges the engine's sleep state — never the physics
// themselves.
type Controller struct {
	hooks Hooks

	dragging       bool
	dragID         string
	grabDX, grabDY float64
	downX, downY   float64
	moved          bool
	downOnEmpty    bool

	selectedID string
	hoveredID  string
}

// NewController returns an idle controller.
func NewController(hooks Hooks) *Controller {
	return &Controller{hooks: hooks}
}

// SelectedID returns the currently selected node id, or "".
func (c *Controller) SelectedID() string { return c.selectedID }

// HoveredID returns the node id under the pointer, or "".
func (c *Controller) HoveredID() string { return c.hoveredID }

// ClearSelection drops the selection, e.g. after the selected node was
// removed.
func (c *Controller) ClearSelection() {
	c.setSelected("")
}

func (c *Controller) setSelected(id string) {
	c.selectedID = id
	if c.hooks.OnSelect != nil {
		c.hooks.OnSelect(id)
	}
}

// PointerDown starts a drag when a node is hit. The grab offset keeps the
// node from jumping to the pointer, and the node is pinned at its current
// position so pickup is smooth — wake, no reheat.
func (c *Controller) PointerDown(s *SimulationState, sx, sy float64) {
	c.downX, c.downY = sx, sy
	c.moved = false
	c.downOnEmpty = false

	hit := view.HitTestNode(s.Model, s.Camera, sx, sy, s.Width, s.Height, s.NodeSize)
	if hit == nil {
		c.downOnEmpty = true
		return
	}
	wx, wy := s.Camera.ScreenToWorld(sx, sy, s.Width, s.Height)
	c.dragging = true
	c.dragID = hit.ID
	c.grabDX = hit.X - wx
	c.grabDY = hit.Y - wy
	c.hoveredID = hit.ID // hover follows the grabbed node, not a stale hit
	hit.Pin(hit.X, hit.Y)
	s.Engine.Wake()
}

// PointerMove updates the pin while dragging, or just the hover highlight
// while idle. Hovering never touches the engine's sleep state; dragging
// wakes it on every move so it cannot doze off mid-drag.
func (c *Controller) PointerMove(s *SimulationState, sx, sy float64) {
	dx := sx - c.downX
	dy := sy - c.downY
	if dx*dx+dy*dy > clickSlop*clickSlop {
		c.moved = true
	}

	if !c.dragging {
		if hit := view.HitTestNode(s.Model, s.Camera, sx, sy, s.Width, s.Height, s.NodeSize); hit != nil {
			c.hoveredID = hit.ID
		} else {
			c.hoveredID = ""
		}
		return
	}

	n := s.Model.NodeByID(c.dragID)
	if n == nil {
		// Node removed out from under the drag.
		c.dragging = false
		c.dragID = ""
		return
	}
	wx, wy := s.Camera.ScreenToWorld(sx, sy, s.Width, s.Height)
	n.Pin(wx+c.grabDX, wy+c.grabDY)
	s.Engine.Wake()
}

// PointerUp releases a drag (unpin plus a fresh settle) or resolves a
// click: toggle selection on a node, clear it on empty space.
func (c *Controller) PointerUp(s *SimulationState, sx, sy float64) {
	if c.dragging {
		if n := s.Model.NodeByID(c.dragID); n != nil {
			n.Unpin()
		}
		if c.moved {
			s.Engine.StartSettle("dragEnd")
		} else if c.selectedID == c.dragID {
			c.setSelected("")
		} else {
			c.setSelected(c.dragID)
		}
		c.dragging = false
		c.dragID = ""
		return
	}

	if c.downOnEmpty && !c.moved && c.selectedID != "" {
		c.setSelected("")
	}
	c.downOnEmpty = false
}

// RequestEdit forwards an edit intent for the given node to the host.
func (c *Controller) RequestEdit(id string) {
	if id != "" && c.hooks.OnEdit != nil {
		c.hooks.OnEdit(id)
	}
}

// RequestDelete forwards a delete intent for the given node to the host.
func (c *Controller) RequestDelete(id string) {
	if id != "" && c.hooks.OnDelete != nil {
		c.hooks.OnDelete(id)
	}
}

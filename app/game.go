package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quantboard/graphview/graph"
	"github.com/quantboard/graphview/view"
)

// One ebiten tick at the target rate, used to normalize wall-clock dt into
// reference-frame units.
const nominalFrame = time.Second / 60

// After a stall (backgrounded window, GC pause) a single step never
// advances more than this many reference frames.
const maxFrameStep = 2.0

// Game is the frame driver: it polls input into the controller, advances
// the engine once per tick, and renders. Implements ebiten.Game.
type Game struct {
	state *SimulationState
	ctrl  *Controller

	dark    bool
	labels  bool
	paused  bool
	overlay bool
	stopped bool

	last    time.Time
	elapsed float64

	adhocSeq int
}

// NewGame wires a state and host hooks into a runnable viewer.
func NewGame(state *SimulationState, hooks Hooks, dark bool) *Game {
	return &Game{
		state:   state,
		ctrl:    NewController(hooks),
		dark:    dark,
		labels:  true,
		overlay: true,
	}
}

// Controller exposes selection/hover to the host.
func (g *Game) Controller() *Controller { return g.ctrl }

// State exposes the owned simulation state to the host.
func (g *Game) State() *SimulationState { return g.state }

// Stop ends the loop on the next Update. Safe to call more than once.
func (g *Game) Stop() { g.stopped = true }

// Update advances one tick: input, then a clamped physics step.
func (g *Game) Update() error {
	if g.stopped {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1.0
	if !g.last.IsZero() {
		raw := now.Sub(g.last).Seconds() / nominalFrame.Seconds()
		dt = min(raw, maxFrameStep)
		g.elapsed += now.Sub(g.last).Seconds()
	}
	g.last = now

	g.handleInput()

	if !g.paused {
		g.state.Advance(dt)
	}
	return nil
}

func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.PointerDown(g.state, sx, sy)
	}
	g.ctrl.PointerMove(g.state, sx, sy)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.PointerUp(g.state, sx, sy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.dark = !g.dark
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.labels = !g.labels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.overlay = !g.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Engine.Reheat(g.state.NodeGap * reheatFactor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.addAdhocNode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.ctrl.RequestEdit(g.ctrl.SelectedID())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		if id := g.ctrl.SelectedID(); id != "" {
			g.ctrl.RequestDelete(id)
			g.state.RemoveNode(id)
			g.ctrl.ClearSelection()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.ClearSelection()
	}
}

// addAdhocNode drops a scratch rule node into the live model, linked to the
// current selection when there is one. Exercises the same structural-edit
// path the host's create round-trip uses.
func (g *Game) addAdhocNode() {
	g.adhocSeq++
	id := fmt.Sprintf("adhoc-%d", g.adhocSeq)
	g.state.AddNode(graph.Record{ID: id, Name: id}, graph.KindRule)
	if sel := g.ctrl.SelectedID(); sel != "" {
		g.state.AddEdge(id, sel)
	}
}

// Draw renders the current model state. Read-only with respect to the
// model.
func (g *Game) Draw(screen *ebiten.Image) {
	view.Render(screen, g.state.Model, g.state.Camera, g.state.Width, g.state.Height, view.Options{
		Dark:       g.dark,
		SelectedID: g.ctrl.SelectedID(),
		HoveredID:  g.ctrl.HoveredID(),
		NodeSize:   g.state.NodeSize,
		Time:       g.elapsed,
		Labels:     g.labels,
	})

	if g.overlay {
		m := g.state.Model
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"nodes %d  edges %d  components %d  asleep %v",
			len(m.Nodes), len(m.Edges), m.ComponentCount, g.state.Engine.Asleep()))
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.state.Width), int(g.state.Height)
}

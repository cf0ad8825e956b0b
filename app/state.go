// Package app wires the graph model, physics engine, and view together
// behind a single owned state struct, and drives them from an ebiten game
// loop.
package app

import (
	"log/slog"

	"github.com/quantboard/graphview/graph"
	"github.com/quantboard/graphview/physics"
	"github.com/quantboard/graphview/view"
)

// Impulse strength for structural-change reheats, as a fraction of the gap.
const reheatFactor = 0.05

// Anchor spacing relative to the node gap; components sit this far apart.
const anchorFactor = 4.0

// SimulationState is the one mutable bundle every core call threads
// through. The host owns a single instance; nothing here is safe for
// concurrent use, all mutation happens on the frame-driver goroutine.
type SimulationState struct {
	Model  *graph.Model
	Engine *physics.Engine
	Camera view.Camera
	Params physics.Params

	NodeGap  float64
	NodeSize float64
	Width    float64
	Height   float64

	Log *slog.Logger

	wasAsleep bool
}

// NewSimulationState builds the model from the host's records and prepares
// an engine ready to settle it.
func NewSimulationState(metrics, rules []graph.Record, nodeGap, width, height float64, log *slog.Logger) *SimulationState {
	if log == nil {
		log = slog.Default()
	}
	nodeSize := nodeGap / 4
	model, dropped := graph.Build(metrics, rules, nodeSize/2, width, height)
	if dropped > 0 {
		log.Debug("unresolved dependencies dropped", "count", dropped)
	}

	s := &SimulationState{
		Model:    model,
		Engine:   physics.NewEngine(model),
		Camera:   view.NewCamera(),
		Params:   physics.DefaultParams(nodeGap),
		NodeGap:  nodeGap,
		NodeSize: nodeSize,
		Width:    width,
		Height:   height,
		Log:      log,
	}
	s.refreshAnchors()
	s.Engine.StartSettle("initial")
	return s
}

func (s *SimulationState) refreshAnchors() {
	s.Engine.SetAnchors(physics.ComponentAnchors(s.Model.ComponentCount, s.NodeGap*anchorFactor))
}

// SetRecords replaces the whole model after the host refetched its data.
// The engine instance survives; only the model is swapped.
func (s *SimulationState) SetRecords(metrics, rules []graph.Record) {
	model, dropped := graph.Build(metrics, rules, s.NodeSize/2, s.Width, s.Height)
	s.Model = model
	s.Engine.SetModel(model)
	s.refreshAnchors()
	s.Engine.StartSettle("data changed")
	s.Log.Debug("model rebuilt",
		"nodes", len(model.Nodes), "edges", len(model.Edges),
		"components", model.ComponentCount, "dropped", dropped)
}

// SetNodeGap rescales every distance-derived parameter from the new gap.
func (s *SimulationState) SetNodeGap(gap float64) {
	if gap <= 0 {
		return
	}
	s.NodeGap = gap
	s.NodeSize = gap / 4
	s.Params = physics.DefaultParams(gap)
	s.refreshAnchors()
	s.Engine.StartSettle("parameter changed")
}

// structuralChange runs after every live-model edit: anchors may shift when
// the component count changed, and the new topology gets a kick so it
// visibly settles.
func (s *SimulationState) structuralChange() {
	s.refreshAnchors()
	s.Engine.Wake()
	s.Engine.Reheat(s.NodeGap * reheatFactor)
}

// AddNode inserts one record into the live model without a rebuild.
func (s *SimulationState) AddNode(rec graph.Record, kind graph.Kind) {
	c := graph.MetricColor
	if kind == graph.KindRule {
		c = graph.RuleColor
	}
	s.Model.AddNode(&graph.Node{
		ID:     rec.ID,
		Name:   rec.Name,
		Kind:   kind,
		Color:  c,
		Radius: s.NodeSize / 2,
	})
	s.structuralChange()
}

// RemoveNode deletes a node and its edges from the live model.
func (s *SimulationState) RemoveNode(id string) {
	if s.Model.RemoveNode(id) {
		s.structuralChange()
	}
}

// UpdateNode renames a node in place.
func (s *SimulationState) UpdateNode(id, name string) {
	if s.Model.UpdateNode(id, name) {
		s.structuralChange()
	}
}

// AddEdge links two live nodes.
func (s *SimulationState) AddEdge(sourceID, targetID string) {
	if s.Model.AddEdge(sourceID, targetID) {
		s.structuralChange()
	}
}

// RemoveEdge unlinks two live nodes.
func (s *SimulationState) RemoveEdge(sourceID, targetID string) {
	if s.Model.RemoveEdge(sourceID, targetID) {
		s.structuralChange()
	}
}

// Advance steps the engine by dt reference frames. The caller clamps dt.
func (s *SimulationState) Advance(dt float64) {
	s.Engine.Step(dt, s.Params, s.Width, s.Height)
	asleep := s.Engine.Asleep()
	if asleep != s.wasAsleep {
		s.Log.Debug("engine sleep state changed", "asleep", asleep, "reason", s.Engine.LastSettleReason())
		s.wasAsleep = asleep
	}
}

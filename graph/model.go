// Package graph holds the dependency-graph model the simulation runs on:
// nodes for indicator ("metric") and strategy ("rule") records, edges for
// their declared dependencies, and the structural edits the viewer applies
// while the layout is live.
package graph

import (
	"fmt"
	"image/color"
)

// Kind distinguishes the two record families shown on the graph.
type Kind int

const (
	KindMetric Kind = iota
	KindRule
)

func (k Kind) String() string {
	if k == KindRule {
		return "rule"
	}
	return "metric"
}

// Default fill colors per kind. The builder stamps these onto nodes so the
// renderer never has to look the kind up again.
var (
	MetricColor = color.RGBA{R: 0x4e, G: 0xc9, B: 0xb0, A: 0xff}
	RuleColor   = color.RGBA{R: 0xe0, G: 0xa1, B: 0x4c, A: 0xff}
)

// Record is the host-facing shape of one domain item. The surrounding
// application fetches these; the core only reads them.
type Record struct {
	ID   string
	Name string
	Deps []string // dependency names, resolved by name or id at build time
}

// Node is a visual vertex. X/Y are world coordinates, VX/VY the current
// velocity. While the user drags a node, Pinned is set and PinX/PinY
// override the position on every step.
type Node struct {
	ID          string
	Name        string
	Kind        Kind
	Color       color.RGBA
	X, Y        float64
	VX, VY      float64
	Radius      float64
	ComponentID int

	Pinned     bool
	PinX, PinY float64
}

// Pin forces the node position to (x, y) until Unpin is called.
func (n *Node) Pin(x, y float64) {
	n.Pinned = true
	n.PinX, n.PinY = x, y
}

// Unpin releases a pinned node without touching its velocity.
func (n *Node) Unpin() {
	n.Pinned = false
}

// Edge links a dependent node to one of its dependencies. Rendered as an
// undirected line; direction only matters to the host.
type Edge struct {
	ID       string
	SourceID string
	TargetID string
}

// Model is the single shared mutable resource of the viewer. Nodes keep a
// stable iteration order (draw order doubles as z-order); index maps node id
// to its slot and is rebuilt inside every removal, never by the caller.
type Model struct {
	Nodes          []*Node
	Edges          []Edge
	ComponentCount int

	index map[string]int
}

// NewModel returns an empty model with a valid index map.
func NewModel() *Model {
	return &Model{index: make(map[string]int)}
}

// IndexOf returns the slot of the node with the given id in Nodes.
func (m *Model) IndexOf(id string) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// NodeByID returns the node with the given id, or nil.
func (m *Model) NodeByID(id string) *Node {
	i, ok := m.index[id]
	if !ok {
		return nil
	}
	return m.Nodes[i]
}

// AddNode appends a node and relabels components. A node with a duplicate id
// replaces the existing one in place (last write wins).
func (m *Model) AddNode(n *Node) {
	if i, ok := m.index[n.ID]; ok {
		m.Nodes[i] = n
	} else {
		m.index[n.ID] = len(m.Nodes)
		m.Nodes = append(m.Nodes, n)
	}
	m.RecomputeComponents()
}

// RemoveNode deletes the node and every edge touching it. Indices shift on
// removal, so the whole id->index map is re-derived here. Unknown ids are a
// no-op.
func (m *Model) RemoveNode(id string) bool {
	i, ok := m.index[id]
	if !ok {
		return false
	}
	m.Nodes = append(m.Nodes[:i], m.Nodes[i+1:]...)

	kept := m.Edges[:0]
	for _, e := range m.Edges {
		if e.SourceID == id || e.TargetID == id {
			continue
		}
		kept = append(kept, e)
	}
	m.Edges = kept

	m.rebuildIndex()
	m.RecomputeComponents()
	return true
}

// UpdateNode renames a node. Unknown ids are a no-op.
func (m *Model) UpdateNode(id, name string) bool {
	n := m.NodeByID(id)
	if n == nil {
		return false
	}
	n.Name = name
	return true
}

// AddEdge links two existing nodes. Edges with a dangling endpoint or a
// duplicate of an existing link are dropped.
func (m *Model) AddEdge(sourceID, targetID string) bool {
	if m.NodeByID(sourceID) == nil || m.NodeByID(targetID) == nil {
		return false
	}
	id := edgeID(sourceID, targetID)
	for _, e := range m.Edges {
		if e.ID == id {
			return false
		}
	}
	m.Edges = append(m.Edges, Edge{ID: id, SourceID: sourceID, TargetID: targetID})
	m.RecomputeComponents()
	return true
}

// RemoveEdge drops the link between two nodes if present.
func (m *Model) RemoveEdge(sourceID, targetID string) bool {
	id := edgeID(sourceID, targetID)
	for i, e := range m.Edges {
		if e.ID == id {
			m.Edges = append(m.Edges[:i], m.Edges[i+1:]...)
			m.RecomputeComponents()
			return true
		}
	}
	return false
}

func edgeID(sourceID, targetID string) string {
	return fmt.Sprintf("%s->%s", sourceID, targetID)
}

func (m *Model) rebuildIndex() {
	m.index = make(map[string]int, len(m.Nodes))
	for i, n := range m.Nodes {
		m.index[n.ID] = i
	}
}

// RecomputeComponents relabels every node with its connected-component id
// via BFS over the undirected edge set and refreshes ComponentCount.
// Components are numbered in node order, so the labeling is deterministic
// for a given model.
func (m *Model) RecomputeComponents() {
	neighbors := make(map[string][]string, len(m.Nodes))
	for _, e := range m.Edges {
		neighbors[e.SourceID] = append(neighbors[e.SourceID], e.TargetID)
		neighbors[e.TargetID] = append(neighbors[e.TargetID], e.SourceID)
	}

	visited := make(map[string]bool, len(m.Nodes))
	comp := 0
	for _, start := range m.Nodes {
		if visited[start.ID] {
			continue
		}
		queue := []string{start.ID}
		visited[start.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if n := m.NodeByID(id); n != nil {
				n.ComponentID = comp
			}
			for _, next := range neighbors[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		comp++
	}
	m.ComponentCount = comp
}

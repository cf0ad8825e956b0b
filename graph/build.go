package graph

import "math/rand"

// Build converts the host's record lists into a fresh model. One node per
// record, kind distinguishing metrics from rules; dependency names resolve
// against name first, then id. Unresolved names produce no edge and are only
// counted — a referenced record may simply have been deleted or renamed.
// Returned positions carry a small jitter around the origin; the anchor pass
// and the engine move components into their final layout.
func Build(metrics, rules []Record, nodeRadius, viewportW, viewportH float64) (*Model, int) {
	m := NewModel()

	add := func(rec Record, kind Kind) {
		c := MetricColor
		if kind == KindRule {
			c = RuleColor
		}
		m.AddNode(&Node{
			ID:     rec.ID,
			Name:   rec.Name,
			Kind:   kind,
			Color:  c,
			Radius: nodeRadius,
		})
	}
	for _, rec := range metrics {
		add(rec, KindMetric)
	}
	for _, rec := range rules {
		add(rec, KindRule)
	}

	// Resolution maps. Built after all nodes exist so rules can depend on
	// later rules and duplicate ids have already collapsed.
	byName := make(map[string]*Node, len(m.Nodes))
	for _, n := range m.Nodes {
		byName[n.Name] = n
	}

	dropped := 0
	seen := make(map[string]bool)
	link := func(rec Record) {
		src := m.NodeByID(rec.ID)
		if src == nil {
			return
		}
		for _, dep := range rec.Deps {
			target := byName[dep]
			if target == nil {
				target = m.NodeByID(dep)
			}
			if target == nil || target.ID == src.ID {
				dropped++
				continue
			}
			id := edgeID(src.ID, target.ID)
			if seen[id] {
				continue
			}
			seen[id] = true
			m.Edges = append(m.Edges, Edge{
				ID:       id,
				SourceID: src.ID,
				TargetID: target.ID,
			})
		}
	}
	for _, rec := range metrics {
		link(rec)
	}
	for _, rec := range rules {
		link(rec)
	}

	m.RecomputeComponents()

	jitter := nodeRadius
	if v := min(viewportW, viewportH) / 100; v > jitter {
		jitter = v
	}
	for _, n := range m.Nodes {
		n.X = (rand.Float64()*2 - 1) * jitter
		n.Y = (rand.Float64()*2 - 1) * jitter
	}

	return m, dropped
}

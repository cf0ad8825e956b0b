package physics

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/quantboard/graphview/graph"
)

// Distances shorter than this are treated as minDistance so coincident
// nodes never produce infinite or NaN forces.
const minDistance = 1.0

// reheatNoiseFreq scales node positions when sampling the impulse field, so
// nearby nodes receive correlated kicks and drift apart as a group.
const reheatNoiseFreq = 0.013

// Engine advances the layout one tick at a time. It owns no timer; the host
// frame driver calls Step once per animation tick with a clamped dt. After
// enough consecutive low-energy steps the engine sleeps and Step becomes a
// no-op until something wakes it.
type Engine struct {
	model   *graph.Model
	anchors []Point

	asleep       bool
	lowEnergy    int
	settleReason string

	noise *perlin.Perlin
	rng   *rand.Rand
}

// NewEngine creates an engine for the given model. The engine persists
// across parameter changes; only a genuine data change swaps the model via
// SetModel.
func NewEngine(m *graph.Model) *Engine {
	seed := time.Now().UnixNano()
	return &Engine{
		model: m,
		noise: perlin.NewPerlin(2, 2, 3, seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SetModel swaps the model in place, keeping the sleep bookkeeping. Callers
// must follow up with SetAnchors for the new component count.
func (e *Engine) SetModel(m *graph.Model) {
	e.model = m
}

// SetAnchors replaces the per-component target points.
func (e *Engine) SetAnchors(anchors []Point) {
	e.anchors = anchors
}

// StartSettle clears the sleep flag and resets the low-energy counter,
// forcing at least one more full settle phase. The reason is informational
// only and never changes physics.
func (e *Engine) StartSettle(reason string) {
	e.asleep = false
	e.lowEnergy = 0
	e.settleReason = reason
}

// Wake clears the sleep flag without resetting velocities. Used while
// dragging: keeps the simulation live without injecting energy.
func (e *Engine) Wake() {
	e.asleep = false
}

// Asleep reports whether Step currently no-ops.
func (e *Engine) Asleep() bool { return e.asleep }

// LastSettleReason returns the reason passed to the most recent StartSettle.
func (e *Engine) LastSettleReason() string { return e.settleReason }

// Reheat adds a bounded velocity impulse to every unpinned node, sampled
// from a coherent noise field over node positions, then forces a new settle
// phase. Used after structural changes so the new topology is explored.
func (e *Engine) Reheat(amount float64) {
	if e.model == nil || amount <= 0 {
		return
	}
	for _, n := range e.model.Nodes {
		if n.Pinned {
			continue
		}
		angle := e.noise.Noise2D(n.X*reheatNoiseFreq, n.Y*reheatNoiseFreq) * math.Pi
		mag := amount * (0.5 + 0.5*e.rng.Float64())
		n.VX += math.Cos(angle) * mag
		n.VY += math.Sin(angle) * mag
	}
	e.StartSettle("reheat")
}

// Step advances the simulation by dt (in reference-frame units, already
// clamped by the caller). Pinned nodes are snapped to their pin and excluded
// from integration but still repel everything else.
func (e *Engine) Step(dt float64, p Params, viewportW, viewportH float64) {
	if e.asleep || e.model == nil || dt <= 0 {
		return
	}
	nodes := e.model.Nodes
	if len(nodes) == 0 {
		return
	}

	ax := make([]float64, len(nodes))
	ay := make([]float64, len(nodes))

	for i, n := range nodes {
		if n.Pinned {
			continue
		}
		// Pairwise repulsion with cutoff.
		for j, o := range nodes {
			if i == j {
				continue
			}
			dx := n.X - o.X
			dy := n.Y - o.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= p.RepulsionRadius {
				continue
			}
			if d < minDistance {
				// Coincident nodes get a deterministic separation axis.
				d = minDistance
				if dx == 0 && dy == 0 {
					if i > j {
						dx = d
					} else {
						dx = -d
					}
				}
			}
			f := p.RepulsionStrength / (d * d)
			ax[i] += f * dx / d
			ay[i] += f * dy / d
		}

		// Anchor spring toward the component target.
		if n.ComponentID >= 0 && n.ComponentID < len(e.anchors) {
			a := e.anchors[n.ComponentID]
			ax[i] += (a.X - n.X) * p.SpringStrength
			ay[i] += (a.Y - n.Y) * p.SpringStrength
		}
	}

	// Edge springs toward the rest length, both directions.
	if p.EdgeSpringStrength > 0 {
		for _, edge := range e.model.Edges {
			src := e.model.NodeByID(edge.SourceID)
			dst := e.model.NodeByID(edge.TargetID)
			if src == nil || dst == nil {
				continue
			}
			dx := dst.X - src.X
			dy := dst.Y - src.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < minDistance {
				d = minDistance
			}
			f := (d - p.EdgeRestLength) * p.EdgeSpringStrength
			fx := f * dx / d
			fy := f * dy / d
			if i, ok := e.model.IndexOf(edge.SourceID); ok && !src.Pinned {
				ax[i] += fx
				ay[i] += fy
			}
			if i, ok := e.model.IndexOf(edge.TargetID); ok && !dst.Pinned {
				ax[i] -= fx
				ay[i] -= fy
			}
		}
	}

	// Integrate, then measure kinetic energy for the sleep decision.
	maxSpeed := p.RepulsionRadius
	energy := 0.0
	for i, n := range nodes {
		if n.Pinned {
			n.X, n.Y = n.PinX, n.PinY
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX = (n.VX + ax[i]*dt) * p.Damping
		n.VY = (n.VY + ay[i]*dt) * p.Damping
		if maxSpeed > 0 {
			n.VX = clamp(n.VX, -maxSpeed, maxSpeed)
			n.VY = clamp(n.VY, -maxSpeed, maxSpeed)
		}
		n.X += n.VX * dt
		n.Y += n.VY * dt
		if viewportW > 0 && viewportH > 0 {
			n.X = clamp(n.X, -2*viewportW, 2*viewportW)
			n.Y = clamp(n.Y, -2*viewportH, 2*viewportH)
		}
		energy += n.VX*n.VX + n.VY*n.VY
	}

	if energy < p.SleepVelocityThreshold {
		e.lowEnergy++
		if p.SleepFrameCount > 0 && e.lowEnergy >= p.SleepFrameCount {
			e.asleep = true
		}
	} else {
		e.lowEnergy = 0
	}
}

// KineticEnergy returns the sum of squared velocities over unpinned nodes.
func (e *Engine) KineticEnergy() float64 {
	if e.model == nil {
		return 0
	}
	total := 0.0
	for _, n := range e.model.Nodes {
		if n.Pinned {
			continue
		}
		total += n.VX*n.VX + n.VY*n.VY
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

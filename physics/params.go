// Package physics contains the force simulation that lays the dependency
// graph out: per-tick force integration, component anchoring, and the
// energy-based sleep/wake machinery.
package physics

// Params are the simulation tunables. Every distance scales with the single
// NodeGap knob in DefaultParams, so the layout keeps its shape when the gap
// changes.
type Params struct {
	RepulsionStrength float64 // pairwise push, inverse-square falloff
	RepulsionRadius   float64 // cutoff; zero force beyond this distance
	SpringStrength    float64 // pull toward the node's component anchor

	EdgeSpringStrength float64 // pull between connected pairs; 0 disables
	EdgeRestLength     float64 // preferred length of connected pairs

	Damping float64 // velocity decay factor per step

	SleepVelocityThreshold float64 // total kinetic energy floor
	SleepFrameCount        int     // consecutive low-energy steps before sleep
}

// DefaultParams derives a full parameter set from one gap scale.
func DefaultParams(nodeGap float64) Params {
	return Params{
		RepulsionStrength:      nodeGap * nodeGap * 0.6,
		RepulsionRadius:        nodeGap * 3,
		SpringStrength:         0.02,
		EdgeSpringStrength:     0.05,
		EdgeRestLength:         nodeGap,
		Damping:                0.9,
		SleepVelocityThreshold: 0.02,
		SleepFrameCount:        30,
	}
}

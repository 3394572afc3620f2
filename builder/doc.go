// Package builder provides deterministic graph fixtures for core.Graph:
// classic topologies and seeded random graphs over nodes 1..n.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, gopts, bopts, cons...) creates a core.Graph with n nodes,
//     resolves options, and applies constructors in order.
//   - Topology constructors (Constructor implementations):
//     – Path():            1–2–…–n
//     – Cycle():           Path plus n–1 (n ≥ 3)
//     – Star():            node 1 joined to every other node
//     – Complete():        every unordered pair once
//     – RandomSparse(p):   each unordered pair independently with probability p
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed value.
//     – UniformWeightFn:   uniform over [min, max].
//   - Configuration primitives:
//     – BuilderOption:     WithSeed, WithRand, WithWeightFn.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Edges are emitted in a documented, stable order (u ascending, then v ascending).
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder

// Package builder assembles ready-to-analyze factor graphs from reusable
// topology constructors, in the functional-options style used throughout
// lvfactor.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, gopts, bopts, cons...): creates a graph over n variables,
//     resolves the builder configuration, runs every constructor in order,
//     then computes energies and connects components.
//   - Topology constructors (Constructor implementations):
//     – Chain(n):          pairwise factors (i, i+1); a tree.
//     – Cycle(n):          Chain plus the closing factor (n-1, 0).
//     – Star(n):           hub 0 joined to every leaf 1..n-1.
//     – Complete(n):       one pairwise factor per unordered pair.
//     – Grid(rows, cols):  4-neighborhood lattice, variable r*cols+c.
//     – RandomTree(n):     each i > 0 attached to a random earlier variable.
//     – Unary():           one single-variable factor per variable.
//   - Energy distributions (EnergyFn implementations):
//     – DefaultEnergyFn, ConstantEnergyFn, UniformEnergyFn, NormalEnergyFn.
//   - Options:
//     – WithCardinality, WithSeed, WithRand, WithEnergyFn, WithPotts, WithSourced.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order produce
//     identical graphs and energy tables.
//   - Factor tables always agree with the graph's cardinalities.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
package builder

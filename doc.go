// Package lvfactor is an in-memory toolkit for building, classifying and
// evaluating factor graphs: bipartite graphs of discrete variables and the
// factors (energy terms) that couple them.
//
// 🚀 What is in lvfactor?
//
//	• Factor graphs: register variables and factors, track edges, evaluate energies
//	• Structure analysis: connected components, cycle detection, tree check
//	• Factors: explicit energy tables and linear (feature-driven) factors
//	• Disjoint sets: union-find with path halving and union by rank
//	• Builders: chain, cycle, star, complete, grid and random-tree topologies
//	• Documents: TOML / YAML model files, validated and built into graphs
//	• Export: Graphviz DOT, sparse incidence operator, parameter registry
//
// ✨ Why choose lvfactor?
//
//   - Small API with sentinel errors you can match with errors.Is
//   - Safe for concurrent readers: graph state is guarded by a RWMutex
//   - Structure queries refuse to answer from stale analysis
//
// Packages:
//
//	dsu/          disjoint-set forest used for component and cycle detection
//	matrix/       dense row-major float64 matrices for linear factors
//	linop/        generic sparse matrix and linear operator
//	factor/       Factor interface, Table and Linear factors, data sources
//	factorgraph/  the FactorGraph container and its analysis
//	builder/      functional-option constructors for standard topologies
//	model/        declarative TOML / YAML documents
//	cmd/fgraph    command-line front end (analyze, energy, dot, params, generate)
//
// Quick start:
//
//	g, _ := factorgraph.New([]int{2, 2, 2})
//	_ = g.AddFactor(pairwise01)
//	_ = g.AddFactor(pairwise12)
//	_ = g.ConnectComponents()
//	tree, _ := g.IsTree()
//
// Install:
//
//	go get github.com/katalvlaran/lvfactor
package lvfactor

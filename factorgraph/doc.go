// Package factorgraph builds, validates and analyzes factor graphs: discrete
// variables with fixed cardinalities connected by factors (energy functions
// over variable subsets).
//
// The FactorGraph owns three things:
//
//   - the cardinality vector (variable id = index),
//   - the ordered factors and the shared data sources they read from,
//   - a dsu.DisjointSet over variables and factors, built by ConnectComponents.
//
// Lifecycle
//
//  1. Build:    New(cards) → AddFactor / AddDataSource (single writer).
//  2. Connect:  ConnectComponents() once the factor list is final.
//  3. Query:    IsAcyclic / IsConnected / IsTree / Components / Summary.
//  4. Energy:   ComputeEnergies() then EvaluateEnergy(state) as often as needed.
//
// Connectivity model
//
//	Variables occupy node ids [0, V); factor i occupies id V+i. Each
//	(factor, variable) incidence becomes one Union(variable, factor). A factor
//	over k variables is a star, not k·(k-1)/2 variable pairs, so two factors
//	sharing two variables (or any path that returns to a variable) shows up as
//	a Union that reports "already same set", which is exactly a cycle in the
//	bipartite factor graph.
//
//	    x0 ── f0 ── x1          tree: connected, no cycle
//	          │
//	    x0 ── f1 ── x1  (+ f0)  cycle: f0 and f1 both span {x0, x1}
//
// Stale structure
//
//	ConnectComponents records how many variables and factors it saw. Any
//	structural query made before the first call, or after AddFactor or a
//	length-changing SetCardinalities, fails with ErrNotConnected instead of
//	answering from stale state. Calling ConnectComponents again always rebuilds
//	from scratch.
//
// Validation
//
//	By default AddFactor does not check variable ids against the cardinality
//	vector; the check happens in ConnectComponents and EvaluateEnergy. The
//	WithEagerValidation option moves it to AddFactor and additionally requires
//	every factor cardinality to agree with the graph.
//
// Duplicate policy
//
//	Duplicate always copies the cardinality vector and always shares data
//	sources. Factors are shared unless WithDeepFactors is given, in which case
//	each factor is cloned (clones still share their data source). The disjoint
//	set and cycle flag are not carried over: re-run ConnectComponents on the
//	duplicate.
//
// Concurrency
//
//	Graph state is guarded by an RWMutex: queries may run concurrently once the
//	build phase is over. ComputeEnergies takes the write lock because it
//	mutates factor caches. Factors shared between duplicated graphs are not
//	synchronized across those graphs.
package factorgraph

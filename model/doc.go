// Package model reads factor-graph construction recipes from TOML or YAML
// documents and turns them into factorgraph.FactorGraph values.
//
// A document names the variable cardinalities, optional shared data sources,
// the factors, and optionally a list of assignments to evaluate:
//
//	name = "chain"
//	cardinalities = [2, 2, 2]
//	states = [[0, 1, 0]]
//
//	[[sources]]
//	name = "pair"
//	values = [0.0, 1.0, 1.0, 0.0]
//
//	[[factors]]
//	variables = [0, 1]
//	energies = [0.0, 1.0, 1.0, 0.0]
//
//	[[factors]]
//	variables = [1, 2]
//	source = "pair"
//
// Factor kinds:
//   - "table" (default): explicit energies, or a named source whose values are
//     copied into the table when energies are computed.
//   - "linear": energies = weights · source, with one weight row per joint
//     state of the factor's variables.
//
// Documents are input only; graphs are never written back.
package model

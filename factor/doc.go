// Package factor defines the Factor capability consumed by factorgraph and the
// concrete potential families that implement it.
//
// A factor spans an ordered list of discrete variables (its scope). Each
// variable has a cardinality, and the factor owns an energy table with one
// entry per joint state of its scope: |table| = Π cards[i]. Lower energy means
// more probable.
//
// Table layout
//
//	Joint states are laid out in mixed radix with the FIRST variable varying
//	fastest:
//
//	    index = s0 + c0·(s1 + c1·(s2 + …))
//
//	Index and Assignment convert between the two forms.
//
// Families
//
//   - Table:  explicit energies, either given up front or copied from a shared
//     VectorSource on every ComputeEnergies call.
//   - Linear: energies = W·x, where W is a matrix.Dense with one row of weights
//     per joint state and x is the feature vector held by a shared VectorSource.
//
// Data sources
//
//	A VectorSource is shared by reference between every factor that uses it and
//	outlives them. Cloning a factor never clones its source.
//
// Lifecycle
//
//	Factors backed by a source start without a table; Energy returns
//	ErrNotComputed until ComputeEnergies has run. Factors built from explicit
//	energies are usable immediately and ComputeEnergies is a no-op for them.
package factor

package builder

//-----------------------------------------------------------------------------
// Constructor Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomTree is the canonical name for the RandomTree constructor.
	MethodRandomTree = "RandomTree"
	// MethodUnary is the canonical name for the Unary constructor.
	MethodUnary = "Unary"
)

//-----------------------------------------------------------------------------
// Minimum Variable Counts
//-----------------------------------------------------------------------------

// MinChainVariables is the smallest chain with at least one pairwise factor.
const MinChainVariables = 2

// MinCycleVariables is the smallest ring that does not repeat a pair.
const MinCycleVariables = 3

// MinStarVariables is one hub plus at least one leaf.
const MinStarVariables = 2

// MinCompleteVariables is the smallest complete graph with a pairwise factor.
const MinCompleteVariables = 2

// MinGridDim is the smallest allowed grid dimension. A 1×1 grid has no factors.
const MinGridDim = 1

// MinRandomTreeVariables is the smallest random tree with a factor.
const MinRandomTreeVariables = 2

package factorgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvfactor/factorgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// structure collects the three structural answers, failing on any error.
func structure(t *testing.T, g *factorgraph.FactorGraph) (acyclic, connected, tree bool) {
	t.Helper()
	var err error
	acyclic, err = g.IsAcyclic()
	require.NoError(t, err)
	connected, err = g.IsConnected()
	require.NoError(t, err)
	tree, err = g.IsTree()
	require.NoError(t, err)

	return acyclic, connected, tree
}

// TestConnect_Classification covers the canonical topologies.
func TestConnect_Classification(t *testing.T) {
	cases := []struct {
		name      string
		numVars   int
		scopes    [][]int
		acyclic   bool
		connected bool
	}{
		{"two factors over same pair is cyclic", 2, [][]int{{0, 1}, {0, 1}}, false, true},
		{"chain is a tree", 3, [][]int{{0, 1}, {1, 2}}, true, true},
		{"missing variables disconnect", 4, [][]int{{0, 1}}, true, false},
		{"single variable, unary factor", 1, [][]int{{0}}, true, true},
		{"no factors, one variable", 1, nil, true, true},
		{"no factors, two variables", 2, nil, true, false},
		{"triangle of pairwise factors", 3, [][]int{{0, 1}, {1, 2}, {0, 2}}, false, true},
		{"star around a hub", 4, [][]int{{0, 1}, {0, 2}, {0, 3}}, true, true},
		{"higher-order factor", 3, [][]int{{0, 1, 2}}, true, true},
		{"cycle in one of two components", 5, [][]int{{0, 1}, {0, 1}, {2, 3}, {3, 4}}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := make([]int, tc.numVars)
			for i := range cards {
				cards[i] = 2
			}
			g, err := factorgraph.New(cards)
			require.NoError(t, err)
			for _, vars := range tc.scopes {
				require.NoError(t, g.AddFactor(mustTable(t, vars, 2, zeros(len(vars)))))
			}
			require.NoError(t, g.ConnectComponents())

			acyclic, connected, tree := structure(t, g)
			assert.Equal(t, tc.acyclic, acyclic, "acyclic")
			assert.Equal(t, tc.connected, connected, "connected")
			assert.Equal(t, tc.acyclic && tc.connected, tree, "tree")

			hasCycle, err := g.HasCycle()
			require.NoError(t, err)
			assert.Equal(t, !acyclic, hasCycle)
		})
	}
}

// TestConnect_RequiresRun verifies queries before ConnectComponents fail.
func TestConnect_RequiresRun(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2})
	require.NoError(t, err)

	_, err = g.IsAcyclic()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)
	_, err = g.IsConnected()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)
	_, err = g.IsTree()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)
	_, err = g.DisjointSet()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)
	_, err = g.Components()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)
}

// TestConnect_StaleAfterMutation verifies that adding a factor or changing the
// variable count invalidates the last run, and that a rerun rebuilds.
func TestConnect_StaleAfterMutation(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(mustTable(t, []int{0, 1}, 2, zeros(2))))
	require.NoError(t, g.AddFactor(mustTable(t, []int{1, 2}, 2, zeros(2))))
	require.NoError(t, g.ConnectComponents())
	tree, err := g.IsTree()
	require.NoError(t, err)
	require.True(t, tree)

	require.NoError(t, g.AddFactor(mustTable(t, []int{0, 2}, 2, zeros(2))))
	_, err = g.IsTree()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)

	require.NoError(t, g.ConnectComponents())
	tree, err = g.IsTree()
	require.NoError(t, err)
	assert.False(t, tree, "third factor closes a cycle")

	require.NoError(t, g.SetCardinalities([]int{2, 2, 2, 2}))
	_, err = g.IsAcyclic()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)

	// Same variable count: structure stays valid.
	require.NoError(t, g.ConnectComponents())
	require.NoError(t, g.SetCardinalities([]int{3, 3, 3, 3}))
	_, err = g.IsAcyclic()
	assert.NoError(t, err)
}

// TestConnect_FailureDiscardsStructure verifies a failed run does not leave
// the previous answers reachable.
func TestConnect_FailureDiscardsStructure(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(mustTable(t, []int{0, 1}, 2, zeros(2))))
	require.NoError(t, g.ConnectComponents())

	require.NoError(t, g.SetCardinalities([]int{2}))
	assert.ErrorIs(t, g.ConnectComponents(), factorgraph.ErrVariableOutOfRange)
	_, err = g.IsConnected()
	assert.ErrorIs(t, err, factorgraph.ErrNotConnected)
}

// TestDisjointSet_NodeLayout verifies variables occupy [0,V) and factor i is V+i.
func TestDisjointSet_NodeLayout(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2, 2, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(mustTable(t, []int{0, 1}, 2, zeros(2))))
	require.NoError(t, g.AddFactor(mustTable(t, []int{2, 3}, 2, zeros(2))))
	require.NoError(t, g.ConnectComponents())

	d, err := g.DisjointSet()
	require.NoError(t, err)
	assert.Equal(t, 6, d.Size())
	assert.Equal(t, 2, d.Count())

	same, err := d.Connected(0, 4)
	require.NoError(t, err)
	assert.True(t, same, "factor 0 is node 4")
	same, err = d.Connected(3, 5)
	require.NoError(t, err)
	assert.True(t, same, "factor 1 is node 5")
	same, err = d.Connected(0, 5)
	require.NoError(t, err)
	assert.False(t, same)

	// The accessor hands out a copy.
	_, err = d.Union(0, 5)
	require.NoError(t, err)
	connected, err := g.IsConnected()
	require.NoError(t, err)
	assert.False(t, connected)
	d2, err := g.DisjointSet()
	require.NoError(t, err)
	assert.Equal(t, 2, d2.Count())
}

// TestComponents verifies variable grouping, ignoring factor nodes.
func TestComponents(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2, 2, 2, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(mustTable(t, []int{3, 1}, 2, zeros(2))))
	require.NoError(t, g.AddFactor(mustTable(t, []int{0, 4}, 2, zeros(2))))
	require.NoError(t, g.ConnectComponents())

	comps, err := g.Components()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 4}, {1, 3}, {2}}, comps)
}

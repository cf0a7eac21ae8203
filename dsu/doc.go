// Package dsu provides a disjoint-set (union-find) structure over a fixed
// universe of integer node ids [0, n).
//
// What & Why
//
//   - A DisjointSet maintains a partition of {0,…,n-1} into disjoint sets and
//     answers two questions fast: "which set is x in?" (Find) and "merge the
//     sets of x and y" (Union).
//
//   - Union reports whether x and y were ALREADY in the same set. When unions are
//     issued edge by edge while building a graph, a true result means the new
//     edge closes a loop; factorgraph.ConnectComponents relies on this to flag
//     cycles without a separate traversal.
//
// Algorithm
//
//   - Find walks to the root with path halving (every visited node is re-pointed
//     to its grandparent), iteratively, so deep chains never recurse.
//   - Union links by rank: the shallower tree is attached under the deeper root;
//     equal ranks bump the surviving root's rank by one.
//
// Complexity
//
//   - New(n):          O(n) time and memory.
//   - Find / Union:    O(α(n)) amortized (α = inverse Ackermann).
//   - Components():    O(n·α(n)).
//
// Errors
//
//	ErrNegativeSize - New was called with n < 0.
//	ErrOutOfRange   - a node id outside [0, n) was passed to Find/Union/Connected.
//
// Concurrency
//
//	DisjointSet is NOT safe for concurrent use: Find compresses paths and thus
//	writes even on a logical read. Callers that share an instance must either
//	synchronize or hand out Clone() copies.
package dsu

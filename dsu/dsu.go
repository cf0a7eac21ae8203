// SPDX-License-Identifier: MIT
// Package: lvfactor/dsu
//
// dsu.go - slice-backed union-find with path halving and union by rank.
//
// Contract:
//   - Node ids are dense integers in [0, n); no lazy insertion.
//   - Union returns true iff both ids already shared a representative.
//   - Out-of-range ids return ErrOutOfRange; nothing panics.
//
// Determinism:
//   - On equal ranks the representative of x survives, so the same sequence of
//     Union calls always yields the same representatives.

package dsu

import "fmt"

// DisjointSet partitions the node ids [0, n) into disjoint sets.
type DisjointSet struct {
	parent []int // parent[x] == x marks a set representative
	rank   []int // upper bound on tree height, valid for roots only
	count  int   // number of disjoint sets currently in the partition
}

// New creates a DisjointSet of n singleton sets {0}, {1}, …, {n-1}.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeSize)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Size returns the number of node ids in the universe.
func (d *DisjointSet) Size() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the representative of the set containing x.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check("Find", x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// find is Find without the bounds check.
func (d *DisjointSet) find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent, then step there.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y.
//
// Returns:
//
//	true  - x and y were already in the same set, nothing changed.
//	false - two distinct sets were merged.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if err := d.check("Union", x); err != nil {
		return false, err
	}
	if err := d.check("Union", y); err != nil {
		return false, err
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return true, nil
	}

	// Attach the shallower tree under the deeper root.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return false, nil
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if err := d.check("Connected", x); err != nil {
		return false, err
	}
	if err := d.check("Connected", y); err != nil {
		return false, err
	}

	return d.find(x) == d.find(y), nil
}

// Components returns every set as an ascending slice of node ids. Sets are
// ordered by their smallest member, so the result is deterministic.
// Complexity: O(n·α(n)).
func (d *DisjointSet) Components() [][]int {
	slot := make(map[int]int, d.count) // representative -> index in out
	out := make([][]int, 0, d.count)
	for x := range d.parent {
		r := d.find(x)
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}

// Clone returns an independent copy of the partition.
// Complexity: O(n).
func (d *DisjointSet) Clone() *DisjointSet {
	c := &DisjointSet{
		parent: make([]int, len(d.parent)),
		rank:   make([]int, len(d.rank)),
		count:  d.count,
	}
	copy(c.parent, d.parent)
	copy(c.rank, d.rank)

	return c
}

// Reset turns every node back into a singleton set without reallocating.
func (d *DisjointSet) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 0
	}
	d.count = len(d.parent)
}

// check validates that x is a node id of this universe.
func (d *DisjointSet) check(method string, x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%s(%d): size=%d: %w", method, x, len(d.parent), ErrOutOfRange)
	}

	return nil
}

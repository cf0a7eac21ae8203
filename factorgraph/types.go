// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// types.go - FactorGraph type, options and constructor.

package factorgraph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvfactor/dsu"
	"github.com/katalvlaran/lvfactor/factor"
)

// Name is the class name reported by FactorGraph.Name.
const Name = "FactorGraph"

// FeatureType tags the element type of a feature container.
type FeatureType int

// FeatureClass tags the container family of a feature container.
type FeatureClass int

const (
	// FeatureTypeAny is the only feature type a factor graph reports.
	FeatureTypeAny FeatureType = iota
)

const (
	// FeatureClassAny is the only feature class a factor graph reports.
	FeatureClassAny FeatureClass = iota
)

// Option configures a FactorGraph at construction.
type Option func(*config)

type config struct {
	eager bool // validate factors in AddFactor
}

// WithEagerValidation makes AddFactor reject factors whose variable ids are out
// of range or whose cardinalities disagree with the graph. Without it those
// checks are deferred to ConnectComponents and EvaluateEnergy.
func WithEagerValidation() Option {
	return func(c *config) { c.eager = true }
}

// FactorGraph is a set of discrete variables connected by factors.
//
// mu guards every field below it.
type FactorGraph struct {
	mu  sync.RWMutex
	cfg config

	cards    []int
	factors  []factor.Factor
	sources  []factor.DataSource
	numEdges int

	// Structure, valid only while built and fresh (see fresh).
	dset      *dsu.DisjointSet
	hasCycle  bool
	connected bool // every node shares one representative
	built     bool // ConnectComponents has run at least once
	builtVars int  // len(cards) seen by the last ConnectComponents
	builtFacs int  // len(factors) seen by the last ConnectComponents
}

// New creates a factor graph over len(cards) variables. The slice is copied.
//
// Errors:
//   - ErrNoVariables if cards is empty.
//   - ErrBadCardinality if any cardinality is <= 0.
//
// Complexity: O(len(cards)).
func New(cards []int, opts ...Option) (*FactorGraph, error) {
	if err := checkCardinalities(cards); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	g := &FactorGraph{cards: append([]int(nil), cards...)}
	for _, opt := range opts {
		if opt == nil {
			panic("factorgraph: nil Option")
		}
		opt(&g.cfg)
	}

	return g, nil
}

// Name returns the class name, "FactorGraph".
func (g *FactorGraph) Name() string { return Name }

// FeatureType always returns FeatureTypeAny.
func (g *FactorGraph) FeatureType() FeatureType { return FeatureTypeAny }

// FeatureClass always returns FeatureClassAny.
func (g *FactorGraph) FeatureClass() FeatureClass { return FeatureClassAny }

func checkCardinalities(cards []int) error {
	if len(cards) == 0 {
		return ErrNoVariables
	}
	for i, c := range cards {
		if c <= 0 {
			return fmt.Errorf("cards[%d]=%d: %w", i, c, ErrBadCardinality)
		}
	}

	return nil
}

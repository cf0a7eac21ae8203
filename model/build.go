// SPDX-License-Identifier: MIT
// Package: lvfactor/model
//
// build.go - turning a validated document into a factor graph.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/factorgraph"
	"github.com/katalvlaran/lvfactor/matrix"
)

// Build validates the document and constructs the graph it describes:
// sources and factors are added in document order, then energies are
// computed and components connected, so the graph is ready for queries.
//
// Factor cardinalities are taken from the document's cardinality vector,
// hence every factor variable must be in range (ErrUnknownVariable).
func (d *Document) Build() (*factorgraph.FactorGraph, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	var opts []factorgraph.Option
	if d.Eager {
		opts = append(opts, factorgraph.WithEagerValidation())
	}
	g, err := factorgraph.New(d.Cardinalities, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	sources := make(map[string]*factor.VectorSource, len(d.Sources))
	for _, s := range d.Sources {
		if _, dup := sources[s.Name]; dup {
			return nil, fmt.Errorf("Build: source %q: %w", s.Name, ErrDuplicateSource)
		}
		src, err := factor.NewVectorSource(s.Name, s.Values)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if err = g.AddDataSource(src); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		sources[s.Name] = src
	}

	for i, fd := range d.Factors {
		f, err := d.buildFactor(fd, sources)
		if err != nil {
			return nil, fmt.Errorf("Build: factor %d: %w", i, err)
		}
		if err = g.AddFactor(f); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if err = g.ComputeEnergies(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err = g.ConnectComponents(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

func (d *Document) buildFactor(fd Factor, sources map[string]*factor.VectorSource) (factor.Factor, error) {
	cards := make([]int, len(fd.Variables))
	for k, v := range fd.Variables {
		if v >= len(d.Cardinalities) {
			return nil, fmt.Errorf("variable %d, have %d: %w", v, len(d.Cardinalities), ErrUnknownVariable)
		}
		cards[k] = d.Cardinalities[v]
	}

	var src *factor.VectorSource
	if fd.Source != "" {
		var ok bool
		if src, ok = sources[fd.Source]; !ok {
			return nil, fmt.Errorf("%q: %w", fd.Source, ErrUnknownSource)
		}
	}

	switch fd.Kind {
	case KindLinear:
		if src == nil || fd.Energies != nil {
			return nil, fmt.Errorf("linear factor needs a source and no energies: %w", ErrInvalidDocument)
		}
		w, err := matrix.NewDenseFrom(fd.Weights)
		if err != nil {
			return nil, err
		}
		return factor.NewLinear(fd.Variables, cards, w, src)
	default:
		if src != nil {
			return factor.NewSourcedTable(fd.Variables, cards, src)
		}
		return factor.NewTable(fd.Variables, cards, fd.Energies)
	}
}

// Observations returns one observation per document state, without loss
// weights.
func (d *Document) Observations() []*factorgraph.Observation {
	out := make([]*factorgraph.Observation, len(d.States))
	for i, s := range d.States {
		out[i] = factorgraph.NewObservation(s, nil)
	}

	return out
}

// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"sync"
)

// VectorSource is a named, shared vector of values. Table factors copy it as
// their energy table; Linear factors read it as a feature vector.
//
// VectorSource is safe for concurrent use: values are guarded by an RWMutex and
// every accessor works on copies.
type VectorSource struct {
	name string

	mu     sync.RWMutex
	values []float64
}

var _ DataSource = (*VectorSource)(nil)

// NewVectorSource creates a source holding a copy of values.
//
// Errors:
//   - ErrEmptySource if values is empty.
//   - ErrNonFinite if any value is NaN or ±Inf.
func NewVectorSource(name string, values []float64) (*VectorSource, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewVectorSource(%q): %w", name, ErrEmptySource)
	}
	if err := checkFinite(values); err != nil {
		return nil, fmt.Errorf("NewVectorSource(%q): %w", name, err)
	}

	return &VectorSource{name: name, values: append([]float64(nil), values...)}, nil
}

// Name returns the source name.
func (s *VectorSource) Name() string {
	return s.name
}

// Len returns the number of values.
func (s *VectorSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// Values returns a copy of the current values.
func (s *VectorSource) Values() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]float64(nil), s.values...)
}

// SetValues replaces the values. Factors pick the change up on their next
// ComputeEnergies call.
func (s *VectorSource) SetValues(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("SetValues(%q): %w", s.name, ErrEmptySource)
	}
	if err := checkFinite(values); err != nil {
		return fmt.Errorf("SetValues(%q): %w", s.name, err)
	}

	s.mu.Lock()
	s.values = append([]float64(nil), values...)
	s.mu.Unlock()

	return nil
}

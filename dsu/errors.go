// SPDX-License-Identifier: MIT

package dsu

import "errors"

var (
	// ErrNegativeSize indicates that New was called with a negative universe size.
	ErrNegativeSize = errors.New("dsu: size must be >= 0")

	// ErrOutOfRange indicates that a node id is outside [0, Size()).
	ErrOutOfRange = errors.New("dsu: node id out of range")
)

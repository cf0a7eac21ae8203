// SPDX-License-Identifier: MIT

package model

import "errors"

// Sentinel errors for document handling.
var (
	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("model: unsupported document format")

	// ErrUnknownField indicates a key the document schema does not define.
	ErrUnknownField = errors.New("model: unknown field")

	// ErrInvalidDocument indicates a document that failed schema validation.
	ErrInvalidDocument = errors.New("model: invalid document")

	// ErrUnknownSource indicates a factor referencing an undeclared source.
	ErrUnknownSource = errors.New("model: unknown source")

	// ErrDuplicateSource indicates two sources with the same name.
	ErrDuplicateSource = errors.New("model: duplicate source name")

	// ErrUnknownVariable indicates a factor variable outside the cardinality vector.
	ErrUnknownVariable = errors.New("model: unknown variable")
)

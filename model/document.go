// SPDX-License-Identifier: MIT
// Package: lvfactor/model
//
// document.go - document schema, decoding and validation.

package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Factor kinds.
const (
	KindTable  = "table"
	KindLinear = "linear"
)

// Document is a factor-graph construction recipe.
type Document struct {
	Name          string   `toml:"name" yaml:"name"`
	Cardinalities []int    `toml:"cardinalities" yaml:"cardinalities" validate:"required,min=1,dive,gt=0"`
	Eager         bool     `toml:"eager" yaml:"eager"`
	Sources       []Source `toml:"sources" yaml:"sources" validate:"dive"`
	Factors       []Factor `toml:"factors" yaml:"factors" validate:"dive"`
	States        [][]int  `toml:"states" yaml:"states" validate:"dive,required"`
}

// Source is a named vector shared by one or more factors.
type Source struct {
	Name   string    `toml:"name" yaml:"name" validate:"required"`
	Values []float64 `toml:"values" yaml:"values" validate:"required,min=1"`
}

// Factor describes one factor. Kind defaults to KindTable.
type Factor struct {
	Kind      string      `toml:"kind" yaml:"kind" validate:"omitempty,oneof=table linear"`
	Variables []int       `toml:"variables" yaml:"variables" validate:"required,min=1,dive,gte=0"`
	Energies  []float64   `toml:"energies" yaml:"energies" validate:"required_without=Source,excluded_with=Source"`
	Source    string      `toml:"source" yaml:"source" validate:"required_without=Energies"`
	Weights   [][]float64 `toml:"weights" yaml:"weights" validate:"required_if=Kind linear,excluded_unless=Kind linear"`
}

var validate = validator.New()

// DecodeTOML reads a TOML document. Keys outside the schema are rejected.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("DecodeTOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("DecodeTOML: %s: %w", strings.Join(keys, ", "), ErrUnknownField)
	}

	return &doc, nil
}

// DecodeYAML reads a YAML document. Keys outside the schema are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if strings.Contains(err.Error(), "not found in type") {
			return nil, fmt.Errorf("DecodeYAML: %v: %w", err, ErrUnknownField)
		}
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}

	return &doc, nil
}

// Load decodes the document at path, picking the decoder by extension, and
// validates it.
func Load(path string) (*Document, error) {
	var decode func(io.Reader) (*Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decode = DecodeTOML
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return nil, fmt.Errorf("Load(%q): %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	if err = doc.Validate(); err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return doc, nil
}

// Validate checks the document schema. Each failing field is listed in the
// error, which wraps ErrInvalidDocument.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("Validate: %w: %v", ErrInvalidDocument, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}

	return fmt.Errorf("Validate: %w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

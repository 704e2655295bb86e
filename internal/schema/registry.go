// Package schema loads the field-definition registry that decides which keys an output
// record carries.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

//go:embed definitions.json
var defaultDefinitions []byte

//go:embed definitions.schema.json
var definitionsSchema []byte

// Field describes one output key.
type Field struct {
	Name        model.Key `json:"name"`
	Kind        string    `json:"kind"`
	Description string    `json:"description,omitempty"`
}

// Definitions is the decoded registry file.
type Definitions struct {
	Types   map[model.DocumentType][]Field `json:"types"`
	General []Field                        `json:"general"`
	Version int                            `json:"version"`
}

// Registry answers which keys belong to the general group and to each document type.
type Registry struct {
	defs Definitions
}

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("definitions.schema.json", bytes.NewReader(definitionsSchema)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	return compiler.MustCompile("definitions.schema.json")
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := Parse(defaultDefinitions)
	if err != nil {
		panic(fmt.Sprintf("built-in field definitions: %v", err))
	}
	return r
}

// Load reads a registry file. An empty path yields the built-in registry.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("field definitions %s: %w", path, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read field definitions: %w", err)
	}
	return Parse(data)
}

// Validate checks data against the registry JSON Schema and the known key vocabulary.
func Validate(data []byte) error {
	_, err := Parse(data)
	return err
}

// Parse validates and decodes a registry document.
func Parse(data []byte) (*Registry, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidSchema, err)
	}
	if err := compiled.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidSchema, err)
	}

	var defs Definitions
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidSchema, err)
	}

	if err := checkGeneral(defs.General); err != nil {
		return nil, err
	}
	for t, fields := range defs.Types {
		if err := checkDomain(t, fields); err != nil {
			return nil, err
		}
	}

	return &Registry{defs: defs}, nil
}

// checkGeneral requires the complete general vocabulary. Every record carries these keys,
// document_id in particular, whatever type is inferred.
func checkGeneral(fields []Field) error {
	seen := make(map[model.Key]bool, len(fields))
	for _, f := range fields {
		if !slices.Contains(model.GeneralKeys, f.Name) {
			return fmt.Errorf("%w: general: %q is not a general field", common.ErrInvalidSchema, f.Name)
		}
		seen[f.Name] = true
	}
	for _, k := range model.GeneralKeys {
		if !seen[k] {
			return fmt.Errorf("%w: general: missing field %q", common.ErrInvalidSchema, k)
		}
	}
	return nil
}

// checkDomain allows a subset of the type's own keys, so a registry can narrow a type but
// never move a key into another one.
func checkDomain(t model.DocumentType, fields []Field) error {
	allowed := model.DomainKeys(t)
	for _, f := range fields {
		if !slices.Contains(allowed, f.Name) {
			return fmt.Errorf("%w: %s: %q is not a %s field", common.ErrInvalidSchema, t, f.Name, t)
		}
	}
	return nil
}

// Definitions returns the decoded registry.
func (r *Registry) Definitions() Definitions {
	return r.defs
}

// GeneralKeys returns the general keys in output order.
func (r *Registry) GeneralKeys() []model.Key {
	return keys(r.defs.General)
}

// DomainKeys returns the keys kept for t in output order. Unknown types have none.
func (r *Registry) DomainKeys(t model.DocumentType) []model.Key {
	return keys(r.defs.Types[t])
}

func keys(fields []Field) []model.Key {
	out := make([]model.Key, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

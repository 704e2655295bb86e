// Package assemble builds output records from merged field sets.
package assemble

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/schema"
)

// Assembler keeps the general keys and the inferred type's keys, as listed by a
// field-definition registry. Every other extracted value is dropped.
type Assembler struct {
	registry *schema.Registry
}

// New creates an assembler. A nil registry uses the built-in definitions.
func New(registry *schema.Registry) *Assembler {
	if registry == nil {
		registry = schema.Default()
	}
	return &Assembler{registry: registry}
}

// Assemble builds the record for one document. Null, empty and blank values are left
// out; an unknown type yields an empty domain group.
func (a *Assembler) Assemble(fileName string, fields model.FieldSet, t model.DocumentType) model.OutputRecord {
	if t == "" {
		t = model.DocumentTypeUnknown
	}
	generalOrder := a.registry.GeneralKeys()
	domainOrder := a.registry.DomainKeys(t)

	return model.OutputRecord{
		FileName:     fileName,
		Type:         t,
		General:      fields.Restrict(generalOrder),
		Domain:       fields.Restrict(domainOrder),
		GeneralOrder: generalOrder,
		DomainOrder:  domainOrder,
	}
}

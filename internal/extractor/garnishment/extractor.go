// Package garnishment extracts fields from German garnishment and enforcement orders.
//
// Documents are first matched against the known order formats by their title markers.
// Anything else goes to the per-language handler, which recognizes nothing yet, so
// unrelated text yields an empty set rather than an error.
package garnishment

import (
	"log/slog"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

// format is a recognizable order layout with its own rule set.
type format struct {
	name    string
	markers []string // all must be present
	fields  rules.FieldRules
}

func (f format) matches(text string) bool {
	for _, m := range f.markers {
		if !strings.Contains(text, m) {
			return false
		}
	}
	return true
}

// Extractor extracts garnishment fields.
type Extractor struct {
	handlers *rules.Registry
	formats  []format
}

// New creates a garnishment extractor. Formats are checked in order; the court order
// requires both of its markers and so precedes the enforcement order.
func New() *Extractor {
	generic := rules.HandlerFunc(func(string) model.FieldSet { return model.NewFieldSet() })

	handlers := rules.NewRegistry(model.LanguageEnglish)
	for _, lang := range model.SupportedLanguages {
		handlers.Register(lang, generic)
	}

	return &Extractor{
		handlers: handlers,
		formats:  []format{courtOrder, enforcementOrder},
	}
}

// Domain reports the document type these fields belong to.
func (e *Extractor) Domain() model.DocumentType {
	return model.DocumentTypeGarnishment
}

// Extract returns the garnishment fields found in text.
func (e *Extractor) Extract(text string, lang model.Language) model.FieldSet {
	for _, f := range e.formats {
		if f.matches(text) {
			slog.Debug("Recognized garnishment format", "format", f.name)
			return f.fields.Extract(text)
		}
	}
	return e.handlers.Lookup(lang).Extract(text)
}

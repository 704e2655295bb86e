// Package general extracts the fields every document carries: its identifier, date,
// customer and issuing institution.
package general

import (
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var documentIDPattern = regexp.MustCompile(`\b[A-Z]{2,5}(?:-[A-Z]{2})?-\d{4,6}-\d{4}\b`)

// IDGenerator produces the fallback document id.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// Extractor extracts general fields.
type Extractor struct {
	handlers *rules.Registry
	newID    IDGenerator
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithIDGenerator replaces the UUID fallback, mainly for tests.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Extractor) {
		e.newID = g
	}
}

// New creates an extractor with handlers for all supported languages.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		handlers: rules.NewRegistry(model.LanguageEnglish).
			Register(model.LanguageEnglish, englishRules).
			Register(model.LanguageGerman, germanRules).
			Register(model.LanguageFrench, frenchHandler{}).
			Register(model.LanguageSpanish, spanishHandler{}).
			Register(model.LanguageItalian, italianRules),
		newID: NewUUID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RuleLanguage reports whose label rules read text detected as lang. Languages without
// their own rules are read with the English ones.
func (e *Extractor) RuleLanguage(lang model.Language) model.Language {
	return e.handlers.Resolve(lang)
}

// DocumentID returns the first identifier such as "KRED-DE-123456-2025" in text.
func DocumentID(text string) (string, bool) {
	id := documentIDPattern.FindString(text)
	return id, id != ""
}

// Extract returns the general fields of text. document_id is always set; document_type
// carries the hint until type inference replaces it.
func (e *Extractor) Extract(text string, lang model.Language, hint model.DocumentType) model.FieldSet {
	if lang == "" {
		lang = model.LanguageUnknown
	}
	if hint == "" {
		hint = model.DocumentTypeUnknown
	}

	base := model.NewFieldSet()
	id, ok := DocumentID(text)
	if !ok {
		id = e.newID()
		slog.Debug("No document id in text, generated one", "document_id", id)
	}
	base.SetString(model.KeyDocumentID, id)
	base.SetString(model.KeyDocumentType, string(hint))
	base.SetString(model.KeyLanguage, string(lang))

	found := e.handlers.Lookup(lang).Extract(text).Restrict([]model.Key{
		model.KeyDocumentDate,
		model.KeyCustomerName,
		model.KeyCustomerID,
		model.KeyInstitutionName,
		model.KeyInstitutionAddress,
	})
	return base.Merge(found)
}

// institutions builds one rule per name so the list order, not the text order, decides.
func institutions(names ...string) rules.Chain {
	out := make(rules.Chain, 0, len(names))
	for _, n := range names {
		out = append(out, rules.Capture(`(?i)\b(`+n+`)\b`, nil))
	}
	return out
}

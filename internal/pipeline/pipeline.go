// Package pipeline runs the extraction stages for one document and, through Processor,
// for files and batches of files.
package pipeline

import (
	"log/slog"

	"github.com/MuhammadZahidRWTH/docextract/internal/assemble"
	"github.com/MuhammadZahidRWTH/docextract/internal/extractor/account"
	"github.com/MuhammadZahidRWTH/docextract/internal/extractor/credit"
	"github.com/MuhammadZahidRWTH/docextract/internal/extractor/garnishment"
	"github.com/MuhammadZahidRWTH/docextract/internal/extractor/general"
	"github.com/MuhammadZahidRWTH/docextract/internal/extractor/investment"
	"github.com/MuhammadZahidRWTH/docextract/internal/inference"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/schema"
)

// DomainExtractor extracts the fields of one document type.
type DomainExtractor interface {
	Domain() model.DocumentType
	Extract(text string, lang model.Language) model.FieldSet
}

// Pipeline turns document text into an output record. It holds no per-document state and
// is safe for concurrent use.
type Pipeline struct {
	general   *general.Extractor
	engine    *inference.Engine
	assembler *assemble.Assembler
	domains   []DomainExtractor
	idGen     general.IDGenerator
	registry  *schema.Registry
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithIDGenerator replaces the fallback document id generator.
func WithIDGenerator(g general.IDGenerator) Option {
	return func(p *Pipeline) {
		p.idGen = g
	}
}

// WithRegistry sets the field-definition registry used to assemble records.
func WithRegistry(r *schema.Registry) Option {
	return func(p *Pipeline) {
		p.registry = r
	}
}

// WithEngine replaces the type inference engine.
func WithEngine(e *inference.Engine) Option {
	return func(p *Pipeline) {
		p.engine = e
	}
}

// New creates a pipeline with all four domain extractors.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		idGen: general.NewUUID,
		domains: []DomainExtractor{
			credit.New(),
			account.New(),
			garnishment.New(),
			investment.New(),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.engine == nil {
		p.engine = inference.NewDefaultEngine()
	}
	p.general = general.New(general.WithIDGenerator(p.idGen))
	p.assembler = assemble.New(p.registry)
	return p
}

// RuleLanguage reports which language's label rules read a document detected as lang.
func (p *Pipeline) RuleLanguage(lang model.Language) model.Language {
	return p.general.RuleLanguage(lang)
}

// Process extracts, classifies and assembles one document. Every domain extractor runs
// whatever the final type turns out to be.
func (p *Pipeline) Process(doc model.RawDocument) model.OutputRecord {
	lang := doc.Language
	if lang == "" {
		lang = model.LanguageUnknown
	}

	base := p.general.Extract(doc.Text, lang, model.DocumentTypeUnknown)

	byType := make(map[model.DocumentType]model.FieldSet, len(p.domains))
	evidence := model.NewFieldSet()
	for _, d := range p.domains {
		found := d.Extract(doc.Text, lang)
		byType[d.Domain()] = found
		evidence = evidence.Merge(found)
	}

	result := p.engine.Infer(inference.Input{
		Fields:   evidence,
		Text:     doc.Text,
		Language: lang,
	})

	slog.Info("Processed document",
		"file", doc.FileName,
		"language", lang,
		"rules", p.general.RuleLanguage(lang),
		"document_type", result.Type,
		"decided_by", result.Stage)

	fields := base.With(model.KeyDocumentType, string(result.Type)).Merge(byType[result.Type])
	return p.assembler.Assemble(doc.FileName, fields, result.Type)
}

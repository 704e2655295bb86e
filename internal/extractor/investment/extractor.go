// Package investment extracts portfolio, certificate and pension fund fields.
package investment

import (
	"regexp"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

// amountValue also accepts space-grouped thousands ("12 500,00").
const amountValue = `([\d.,]+(?:[ \x{00A0}\x{202F}]\d{3}(?:[.,]\d+)?)*)(?:\s*(?:€|EUR|\$|USD|£|GBP))?`

var (
	portfolioID = rules.Capture(`\b(PORT-[A-Z]{2}-\d{4}-\d{4})\b`, nil)
	assetLine   = regexp.MustCompile(`\p{Lu}\p{Ll}`)
	blockLines  = regexp.MustCompile(`[^\n]+`)
)

// Extractor extracts investment fields.
type Extractor struct {
	handlers *rules.Registry
}

// New creates an investment extractor for all supported languages.
func New() *Extractor {
	return &Extractor{
		handlers: rules.NewRegistry(model.LanguageEnglish).
			Register(model.LanguageEnglish, rules.HandlerFunc(extractEnglish)).
			Register(model.LanguageGerman, germanHandler).
			Register(model.LanguageFrench, frenchHandler).
			Register(model.LanguageSpanish, spanishHandler).
			Register(model.LanguageItalian, rules.HandlerFunc(extractItalian)),
	}
}

// Domain reports the document type these fields belong to.
func (e *Extractor) Domain() model.DocumentType {
	return model.DocumentTypeInvestment
}

// Extract returns the investment fields found in text.
func (e *Extractor) Extract(text string, lang model.Language) model.FieldSet {
	return e.handlers.Lookup(lang).Extract(text)
}

// summaryHandler reads portfolio summaries laid out in labelled sections. The asset count
// is the number of entry lines in the block under the asset allocation heading.
type summaryHandler struct {
	fields rules.FieldRules
	assets *regexp.Regexp
}

// summaryLabels configures a summaryHandler. Each pattern is matched case-insensitively.
type summaryLabels struct {
	value   string
	risk    string
	section string
}

func newSummaryHandler(l summaryLabels, idRules ...rules.Rule) summaryHandler {
	return summaryHandler{
		fields: rules.FieldRules{
			{Key: model.KeyPortfolioID, Rules: rules.Chain(idRules).Then(portfolioID)},
			{Key: model.KeyPortfolioValue, Rules: rules.Chain{valueRule(l.value)}},
			{Key: model.KeyRiskProfile, Rules: rules.Chain{
				rules.Capture(`(?i:`+l.risk+`)[^\n:\-]*[:\-\s]*(\p{Lu}\p{Ll}+)`, nil),
			}},
		},
		assets: regexp.MustCompile(`(?i)(?:` + l.section + `)[^\n]*\n((?:.+\n?){1,10})`),
	}
}

func (h summaryHandler) Extract(text string) model.FieldSet {
	out := h.fields.Extract(text)
	if m := h.assets.FindStringSubmatch(text); m != nil {
		n := 0
		for _, line := range blockLines.FindAllString(m[1], -1) {
			if assetLine.MatchString(line) {
				n++
			}
		}
		out.SetInt(model.KeyAssetNumber, n)
	}
	return out
}

// valueRule reads the first amount after label. The whole match is normalized so a
// currency written next to the amount is kept.
func valueRule(label string) rules.Rule {
	return rules.CaptureGroup(`(?i)(?:`+label+`)[^\n\d]*?[€$£]?\s*`+amountValue, 0, normalize.Amount)
}

var germanHandler = newSummaryHandler(summaryLabels{
	value:   `gesamtwert des portfolios|gesamtwert`,
	risk:    `risikoprofil`,
	section: `Vermögensaufstellung|Vermögensstruktur`,
})

var spanishHandler = newSummaryHandler(summaryLabels{
	value:   `valor total del portafolio`,
	risk:    `perfil de riesgo`,
	section: `Reparto de activos`,
})

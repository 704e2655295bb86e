// Package account extracts current and savings account statement fields.
package account

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

const labelValue = `[\s:.\-]*([^\n]+)`

var ocrFixes = strings.NewReplacer(
	"S0lde", "Solde",
	"s0lde", "solde",
	"cl0ture", "clôture",
	"disponib1e", "disponible",
)

var (
	ibanFallback = regexp.MustCompile(`\b[A-Z]{2}\d{2}(?:\s?\d{4}){3,6}\s?\d{2}`)
)

// labels is one language's label dictionary. Alternatives are tried in order.
type labels struct {
	accountType      []string
	accountNumber    []string
	statementPeriod  []string
	openingBalance   []string
	closingBalance   []string
	availableBalance []string
	transactionCount []string // each holds one capture group for the count
}

// Extractor extracts personal account fields.
type Extractor struct {
	handlers *rules.Registry
}

// New creates a personal account extractor for all supported languages.
func New() *Extractor {
	return &Extractor{
		handlers: rules.NewRegistry(model.LanguageEnglish).
			Register(model.LanguageEnglish, newHandler(model.LanguageEnglish, englishLabels)).
			Register(model.LanguageGerman, newHandler(model.LanguageGerman, germanLabels)).
			Register(model.LanguageFrench, newHandler(model.LanguageFrench, frenchLabels,
				rules.Capture(`(?i)(relev[eé]\s+du\s+[^\n]+?\s+au\s+[^\n]+)`, rules.WithLang(normalize.Period, model.LanguageFrench)))).
			Register(model.LanguageSpanish, newHandler(model.LanguageSpanish, spanishLabels)).
			Register(model.LanguageItalian, newHandler(model.LanguageItalian, italianLabels)),
	}
}

// Domain reports the document type these fields belong to.
func (e *Extractor) Domain() model.DocumentType {
	return model.DocumentTypePersonalAccount
}

// Extract returns the personal account fields found in text.
func (e *Extractor) Extract(text string, lang model.Language) model.FieldSet {
	return e.handlers.Lookup(lang).Extract(text)
}

type handler struct {
	fields rules.FieldRules
	count  rules.Chain
}

func newHandler(lang model.Language, l labels, extraPeriod ...rules.Rule) handler {
	return handler{
		fields: rules.FieldRules{
			{Key: model.KeyAccountType, Rules: rules.Labelled(l.accountType, labelValue, normalize.Text)},
			{Key: model.KeyAccountNumber, Rules: rules.Labelled(l.accountNumber, labelValue, normalize.AccountNumber)},
			{Key: model.KeyStatementPeriod, Rules: rules.Labelled(l.statementPeriod, labelValue,
				rules.WithLang(normalize.Period, lang)).Then(extraPeriod...)},
			{Key: model.KeyOpeningBalance, Rules: rules.Labelled(l.openingBalance, labelValue, normalize.Amount)},
			{Key: model.KeyClosingBalance, Rules: rules.Labelled(l.closingBalance, labelValue, normalize.Amount)},
			{Key: model.KeyAvailableBalance, Rules: rules.Labelled(l.availableBalance, labelValue, normalize.Amount)},
		},
		count: rules.Labelled(l.transactionCount, "", normalize.Text),
	}
}

func (h handler) Extract(text string) model.FieldSet {
	text = ocrFixes.Replace(text)
	out := h.fields.Extract(text)

	if !out.Has(model.KeyAccountNumber) {
		if m := ibanFallback.FindString(text); m != "" {
			out.SetString(model.KeyAccountNumber, normalize.GroupIBAN(m))
		}
	}

	if !out.Has(model.KeyStatementPeriod) {
		if p, ok := rowPeriod(text); ok {
			out.SetString(model.KeyStatementPeriod, p)
		}
	}

	n := 0
	if v, ok := h.count.Find(text); ok {
		n, _ = strconv.Atoi(v)
	}
	if n == 0 {
		n = countTransactions(text)
	}
	out.SetInt(model.KeyTransactionNumber, n)

	return out
}

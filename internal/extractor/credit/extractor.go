// Package credit extracts card statement and loan fields.
package credit

import (
	"log/slog"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

const (
	moneyValue  = `[\s:\-.]*[€$£]?\s*([-−]?[\d.,]+(?:[ \x{00A0}\x{202F}]\d{3}(?:[.,]\d+)?)*)`
	rateValue   = `[\s:\-.]*([\d.,]+)`
	dateValue   = `[\s:\-.]+([^\n]{5,30})`
	periodValue = `[\s:\-.]+(.+?)(?:\n|$)`
	cardValue   = `[\s:\-]*(\*{4}[- ]?\*{4}[- ]?\*{4}[- ]?\d{4}|\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4})`
)

// labels is one language's label dictionary. Each entry is a single regular expression,
// alternatives included, so the earliest occurrence in the text wins.
type labels struct {
	cardNumber      string
	creditLimit     string
	interestRate    string
	paymentDueDate  string
	statementPeriod string
	minimumPayment  string
	previousBalance string
	newBalance      string
}

var (
	savingsRate    = rules.Chain{rules.Capture(`Interest\s+rate\s+on\s+savings:\s*([\d.]+)%`, normalize.Percent)}
	balanceTrailer = `(?i)[€$£]\s*([\d.,]+).*?(?:balance|saldo|Kontostand)`
)

// Extractor extracts credit fields.
type Extractor struct {
	handlers *rules.Registry
}

// New creates a credit extractor for all supported languages.
func New() *Extractor {
	return &Extractor{
		handlers: rules.NewRegistry(model.LanguageEnglish).
			Register(model.LanguageEnglish, newStatementHandler(model.LanguageEnglish, englishLabels)).
			Register(model.LanguageGerman, newStatementHandler(model.LanguageGerman, germanLabels)).
			Register(model.LanguageFrench, newFrenchHandler()).
			Register(model.LanguageSpanish, newStatementHandler(model.LanguageSpanish, spanishLabels)).
			Register(model.LanguageItalian, newStatementHandler(model.LanguageItalian, italianLabels)),
	}
}

// Domain reports the document type these fields belong to.
func (e *Extractor) Domain() model.DocumentType {
	return model.DocumentTypeCredit
}

// Extract returns the credit fields found in text.
func (e *Extractor) Extract(text string, lang model.Language) model.FieldSet {
	return e.handlers.Lookup(lang).Extract(text)
}

// statementHandler extracts card statement fields from one label dictionary.
type statementHandler struct {
	fields         rules.FieldRules
	newBalance     rules.Chain
	balanceTrailer rules.Chain
}

func newStatementHandler(lang model.Language, l labels) statementHandler {
	money := rules.WithLang(normalize.Money, lang)
	return statementHandler{
		fields: rules.FieldRules{
			{Key: model.KeyCardNumber, Rules: rules.Labelled([]string{l.cardNumber}, cardValue, cardNumber)},
			{Key: model.KeyCreditLimit, Rules: rules.Labelled([]string{l.creditLimit}, moneyValue, money)},
			{Key: model.KeyInterestRate, Rules: rules.Labelled([]string{l.interestRate}, rateValue, normalize.Percent)},
			{Key: model.KeyPaymentDueDate, Rules: rules.Labelled([]string{l.paymentDueDate}, dateValue, rules.WithLang(normalize.AnyDate, lang))},
			{Key: model.KeyStatementPeriod, Rules: rules.Labelled([]string{l.statementPeriod}, periodValue, rules.WithLang(normalize.Period, lang))},
			{Key: model.KeyMinimumPayment, Rules: rules.Labelled([]string{l.minimumPayment}, moneyValue, money)},
			{Key: model.KeyPreviousBalance, Rules: rules.Labelled([]string{l.previousBalance}, moneyValue, money)},
		},
		newBalance:     rules.Labelled([]string{l.newBalance}, moneyValue, money),
		balanceTrailer: rules.Chain{rules.Capture(balanceTrailer, money)},
	}
}

func (h statementHandler) Extract(text string) model.FieldSet {
	out := h.fields.Extract(text)
	if v, ok := savingsRate.Find(text); ok {
		out.SetString(model.KeyInterestRate, v)
	}
	// A labelled balance that fails to normalize still lets the trailer rule try.
	if v, ok := h.newBalance.Find(text); ok {
		out.SetString(model.KeyNewBalance, v)
	} else if v, ok := h.balanceTrailer.Find(text); ok {
		out.SetString(model.KeyNewBalance, v)
	}
	if card := out.String(model.KeyCardNumber); card != "" {
		slog.Debug("Found card number", "last4", card[len(card)-4:])
	}
	return out
}

// cardNumber drops separators. Masked digits stay masked.
func cardNumber(s string) (string, bool) {
	out := strings.NewReplacer("-", "", " ", "").Replace(s)
	if len(out) != 16 {
		return "", false
	}
	return out, true
}

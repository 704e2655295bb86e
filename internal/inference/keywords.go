package inference

import (
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// KeywordRule resolves Type when text in Language contains any of Keywords.
type KeywordRule struct {
	Language model.Language
	Type     model.DocumentType
	Keywords []string // lower case
}

// KeywordRules are checked in order against the lower-cased text; the first match wins.
type KeywordRules []KeywordRule

// DefaultKeywordRules returns the phrase rules for documents that carry no field evidence.
func DefaultKeywordRules() KeywordRules {
	return KeywordRules{
		{Language: model.LanguageSpanish, Type: model.DocumentTypeCredit, Keywords: []string{"regularizar", "saldo pendiente", "pagar antes de"}},
		{Language: model.LanguageFrench, Type: model.DocumentTypeCredit, Keywords: []string{"solde impayé", "paiement requis"}},
		{Language: model.LanguageFrench, Type: model.DocumentTypePersonalAccount, Keywords: []string{"solde disponible", "période de relevé"}},
		{Language: model.LanguageGerman, Type: model.DocumentTypeCredit, Keywords: []string{"zahlung erforderlich", "offener betrag", "kontoüberweisung"}},
		{Language: model.LanguageEnglish, Type: model.DocumentTypeInvestment, Keywords: []string{"investment portfolio summary", "portfolio valuation"}},
		{Language: model.LanguageEnglish, Type: model.DocumentTypePersonalAccount, Keywords: []string{"account statement"}},
	}
}

// Name implements Stage.
func (KeywordRules) Name() string { return StageKeywordRules }

// Infer implements Stage.
func (r KeywordRules) Infer(in Input) (model.DocumentType, bool) {
	text := strings.ToLower(in.Text)
	for _, rule := range r {
		if rule.Language != in.Language {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Type, true
			}
		}
	}
	return "", false
}

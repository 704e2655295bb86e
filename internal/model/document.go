// Package model defines the documents, field sets and output records that flow through the
// extraction pipeline.
package model

// Language is a two-letter routing code produced by language detection.
type Language string

const (
	// LanguageEnglish routes to the English handlers.
	LanguageEnglish Language = "en"
	// LanguageGerman routes to the German handlers.
	LanguageGerman Language = "de"
	// LanguageFrench routes to the French handlers.
	LanguageFrench Language = "fr"
	// LanguageSpanish routes to the Spanish handlers.
	LanguageSpanish Language = "es"
	// LanguageItalian routes to the Italian handlers.
	LanguageItalian Language = "it"
	// LanguageUnsupported marks text in a language without handlers.
	LanguageUnsupported Language = "unsupported"
	// LanguageUnknown marks text whose language could not be detected.
	LanguageUnknown Language = "unknown"
)

// SupportedLanguages lists the languages that have their own handlers.
var SupportedLanguages = []Language{
	LanguageEnglish,
	LanguageGerman,
	LanguageFrench,
	LanguageSpanish,
	LanguageItalian,
}

// IsSupported reports whether l has dedicated handlers.
func (l Language) IsSupported() bool {
	for _, s := range SupportedLanguages {
		if l == s {
			return true
		}
	}
	return false
}

// ParseLanguage maps an arbitrary code onto a routing language.
// Empty input is unknown, anything else without handlers is unsupported.
func ParseLanguage(code string) Language {
	l := Language(code)
	switch {
	case code == "":
		return LanguageUnknown
	case l == LanguageUnknown || l == LanguageUnsupported:
		return l
	case l.IsSupported():
		return l
	default:
		return LanguageUnsupported
	}
}

// DocumentType is the category assigned by type inference.
type DocumentType string

const (
	// DocumentTypeCredit covers card statements, credit notices and loans.
	DocumentTypeCredit DocumentType = "credit"
	// DocumentTypePersonalAccount covers current and savings account statements.
	DocumentTypePersonalAccount DocumentType = "personal_account"
	// DocumentTypeGarnishment covers garnishment and enforcement orders.
	DocumentTypeGarnishment DocumentType = "garnishment"
	// DocumentTypeInvestment covers portfolio summaries, certificates and pension funds.
	DocumentTypeInvestment DocumentType = "investment"
	// DocumentTypeUnknown is assigned when nothing decides the type.
	DocumentTypeUnknown DocumentType = "unknown"
)

// DocumentTypes lists the domain types in tie-break order.
var DocumentTypes = []DocumentType{
	DocumentTypeCredit,
	DocumentTypePersonalAccount,
	DocumentTypeGarnishment,
	DocumentTypeInvestment,
}

// RawDocument is the input of the extraction core.
type RawDocument struct {
	FileName string
	Text     string
	Language Language
}

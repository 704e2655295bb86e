package inference

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Pattern is a keyword pattern for one document type.
type Pattern struct {
	Type     model.DocumentType
	Regex    string
	Priority int // Higher priority patterns are checked first
}

// CompiledPattern holds a compiled regex pattern with metadata.
type CompiledPattern struct {
	compiledRegex *regexp.Regexp
	Pattern
}

// KeywordBag classifies text by category keywords found anywhere in it, regardless of
// language.
type KeywordBag struct {
	patterns []CompiledPattern
}

// NewKeywordBag compiles patterns, case-insensitive by default, and orders them by priority.
func NewKeywordBag(patterns []Pattern) (*KeywordBag, error) {
	compiled := make([]CompiledPattern, 0, len(patterns))

	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for %s: %w", p.Type, err)
		}

		compiled = append(compiled, CompiledPattern{
			Pattern:       p,
			compiledRegex: regex,
		})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &KeywordBag{patterns: compiled}, nil
}

// MustKeywordBag is NewKeywordBag for patterns known to compile.
func MustKeywordBag(patterns []Pattern) *KeywordBag {
	kb, err := NewKeywordBag(patterns)
	if err != nil {
		panic(err)
	}
	return kb
}

// KeywordPattern builds a pattern matching any of the literal keywords.
func KeywordPattern(t model.DocumentType, priority int, keywords ...string) Pattern {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(kw))
	}
	return Pattern{Type: t, Regex: strings.Join(quoted, "|"), Priority: priority}
}

// DefaultKeywordPatterns returns the multilingual keyword bag. Garnishment is checked
// first, then investment, credit and personal account.
func DefaultKeywordPatterns() []Pattern {
	return []Pattern{
		KeywordPattern(model.DocumentTypeGarnishment, 400,
			"garnishment", "pfändung", "saisie", "embargo", "pignoramento", "zustellung", "vollstreckung"),
		KeywordPattern(model.DocumentTypeInvestment, 300,
			"investment", "portfolio", "anlage", "portefeuille", "inversione", "investment portfolio summary",
			"certificato di deposito", "deposito", "deposit certificate"),
		KeywordPattern(model.DocumentTypeCredit, 200,
			"credit", "karte", "crédit", "credito", "tarjeta", "loan", "mortgage", "hypothek", "darlehen"),
		KeywordPattern(model.DocumentTypePersonalAccount, 100,
			"account", "account number", "konto", "compte", "cuenta", "conto", "solde disponible", "période de relevé"),
	}
}

// Name implements Stage.
func (kb *KeywordBag) Name() string { return StageKeywordBag }

// Infer implements Stage.
func (kb *KeywordBag) Infer(in Input) (model.DocumentType, bool) {
	text := strings.ToLower(in.Text)
	for _, p := range kb.patterns {
		if p.compiledRegex.MatchString(text) {
			return p.Type, true
		}
	}
	return "", false
}

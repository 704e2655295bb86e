// Package langdetect maps document text onto the routing languages using
// trigram statistics.
package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

var routing = map[whatlanggo.Lang]model.Language{
	whatlanggo.Eng: model.LanguageEnglish,
	whatlanggo.Deu: model.LanguageGerman,
	whatlanggo.Fra: model.LanguageFrench,
	whatlanggo.Spa: model.LanguageSpanish,
	whatlanggo.Ita: model.LanguageItalian,
}

// Detector detects the language of a text. It is deterministic and safe for
// concurrent use.
type Detector struct {
	opts whatlanggo.Options
}

// New returns a detector over all languages whatlanggo knows. Text in a
// language without handlers is reported as unsupported.
func New() *Detector {
	return &Detector{}
}

// NewRestricted returns a detector that only chooses between the supported
// languages, for inputs known to be in one of them.
func NewRestricted() *Detector {
	whitelist := make(map[whatlanggo.Lang]bool, len(routing))
	for l := range routing {
		whitelist[l] = true
	}
	return &Detector{opts: whatlanggo.Options{Whitelist: whitelist}}
}

// Detect returns the routing language of text: unknown when no script or
// language could be identified, unsupported for languages without handlers.
func (d *Detector) Detect(text string) model.Language {
	if strings.TrimSpace(text) == "" {
		return model.LanguageUnknown
	}
	info := whatlanggo.DetectWithOptions(text, d.opts)
	if info.Lang < 0 {
		return model.LanguageUnknown
	}
	if l, ok := routing[info.Lang]; ok {
		return l
	}
	return model.LanguageUnsupported
}

// Fixed reports the same language for every text, for inputs whose language
// is known up front.
type Fixed model.Language

// Detect returns the fixed language.
func (f Fixed) Detect(_ string) model.Language {
	return model.Language(f)
}

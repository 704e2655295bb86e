// Package rules provides ordered candidate-rule chains and per-language handler registries
// shared by the field extractors.
package rules

import (
	"regexp"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
)

// Normalizer turns a captured fragment into a canonical value.
type Normalizer func(string) (string, bool)

// Rule is one candidate: a pattern and the extractor applied to its submatches.
type Rule struct {
	Pattern *regexp.Regexp
	Extract func(groups []string) (string, bool)
}

// Chain is an ordered list of candidate rules. The first rule whose pattern matches decides
// the value; later rules are fallbacks and never merged with earlier ones.
type Chain []Rule

// Find evaluates the chain against text. A matching rule whose extractor rejects the
// fragment still ends the search.
func (c Chain) Find(text string) (string, bool) {
	for _, r := range c {
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if r.Extract == nil {
			return normalize.Text(firstGroup(m))
		}
		return r.Extract(m)
	}
	return "", false
}

// Then appends fallbacks to c.
func (c Chain) Then(more ...Rule) Chain {
	out := make(Chain, 0, len(c)+len(more))
	out = append(out, c...)
	return append(out, more...)
}

// Capture builds a rule that normalizes the first capture group.
func Capture(pattern string, n Normalizer) Rule {
	return CaptureGroup(pattern, 1, n)
}

// CaptureGroup builds a rule that normalizes the given capture group.
func CaptureGroup(pattern string, group int, n Normalizer) Rule {
	if n == nil {
		n = normalize.Text
	}
	return Rule{
		Pattern: regexp.MustCompile(pattern),
		Extract: func(m []string) (string, bool) {
			if group >= len(m) {
				return "", false
			}
			return n(m[group])
		},
	}
}

// Labelled builds one case-insensitive rule per label, in label order. valuePattern follows
// the label and must hold one capture group.
func Labelled(labels []string, valuePattern string, n Normalizer) Chain {
	out := make(Chain, 0, len(labels))
	for _, label := range labels {
		out = append(out, Capture(`(?i)`+label+valuePattern, n))
	}
	return out
}

// WithLang adapts a language-aware normalizer.
func WithLang(fn func(string, string) (string, bool), lang model.Language) Normalizer {
	return func(s string) (string, bool) {
		return fn(s, string(lang))
	}
}

// Compose runs pre over the fragment before n.
func Compose(pre func(string) string, n Normalizer) Normalizer {
	return func(s string) (string, bool) {
		return n(pre(s))
	}
}

// Compact removes all whitespace from a fragment.
func Compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func firstGroup(m []string) string {
	if len(m) > 1 {
		return m[1]
	}
	return m[0]
}

package rules

import "github.com/MuhammadZahidRWTH/docextract/internal/model"

// Handler extracts fields from text written in one language.
type Handler interface {
	Extract(text string) model.FieldSet
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(text string) model.FieldSet

// Extract calls f.
func (f HandlerFunc) Extract(text string) model.FieldSet {
	return f(text)
}

// Registry maps languages to handlers. Languages without a handler use the fallback's.
// A registry is filled once at construction and only read afterwards.
type Registry struct {
	handlers map[model.Language]Handler
	fallback model.Language
}

// NewRegistry creates an empty registry that falls back to the given language.
func NewRegistry(fallback model.Language) *Registry {
	return &Registry{
		handlers: make(map[model.Language]Handler),
		fallback: fallback,
	}
}

// Register installs h for lang and returns r for chaining.
func (r *Registry) Register(lang model.Language, h Handler) *Registry {
	r.handlers[lang] = h
	return r
}

// Lookup returns the handler for lang, or the fallback handler.
func (r *Registry) Lookup(lang model.Language) Handler {
	if h, ok := r.handlers[lang]; ok {
		return h
	}
	if h, ok := r.handlers[r.fallback]; ok {
		return h
	}
	return HandlerFunc(func(string) model.FieldSet { return model.NewFieldSet() })
}

// Resolve returns the language whose handler Lookup would use.
func (r *Registry) Resolve(lang model.Language) model.Language {
	if _, ok := r.handlers[lang]; ok {
		return lang
	}
	return r.fallback
}
